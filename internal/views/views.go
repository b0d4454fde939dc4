// Package views holds the page views of the shell and renders them into a
// bare HTML document.
package views

// ID identifies a page view.
type ID string

const (
	Home              ID = "home"
	ChineseConverter  ID = "chinese-converter"
	Translator        ID = "translator"
	DesEncryption     ID = "des-encryption"
	MarkdownConverter ID = "markdown-converter"
	ApiDocsToMarkdown ID = "api-docs-to-markdown"
	JsonFormatter     ID = "json-formatter"
	SqlCompressor     ID = "sql-compressor"
	JavaToJson        ID = "java-to-json"
	UnicodeConverter  ID = "unicode-converter"
)

// Page is the static description of a view.
type Page struct {
	ID          ID
	Title       string
	Description string
}

var pages = map[ID]Page{
	Home:              {Home, "首页", "常用文本工具集合"},
	ChineseConverter:  {ChineseConverter, "简繁转换", "简体中文与繁体中文互相转换"},
	Translator:        {Translator, "翻译", "多语言文本翻译"},
	DesEncryption:     {DesEncryption, "DES加解密", "DES 对称加密与解密"},
	MarkdownConverter: {MarkdownConverter, "Markdown转换", "Markdown 与 HTML 互相转换"},
	ApiDocsToMarkdown: {ApiDocsToMarkdown, "接口文档转Markdown", "将接口文档转换为 Markdown"},
	JsonFormatter:     {JsonFormatter, "JSON格式化", "格式化与压缩 JSON"},
	SqlCompressor:     {SqlCompressor, "SQL压缩", "压缩 SQL 语句"},
	JavaToJson:        {JavaToJson, "Java转JSON", "将 Java 类转换为 JSON 示例"},
	UnicodeConverter:  {UnicodeConverter, "Unicode转换", "Unicode 编码与解码"},
}

// Lookup returns the page registered for id.
func Lookup(id ID) (Page, bool) {
	p, ok := pages[id]
	return p, ok
}
