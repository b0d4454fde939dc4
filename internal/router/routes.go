package router

import "github.com/MKhiriev/tool-suite/internal/views"

var defaultRoutes = []Route{
	{Path: "/", Name: "Home", View: views.Home},
	{Path: "/chinese-converter", Name: "ChineseConverter", View: views.ChineseConverter},
	{Path: "/translator", Name: "Translator", View: views.Translator},
	{Path: "/des-encryption", Name: "DesEncryption", View: views.DesEncryption},
	{Path: "/markdown-converter", Name: "MarkdownConverter", View: views.MarkdownConverter},
	{Path: "/api-docs-to-markdown", Name: "ApiDocsToMarkdown", View: views.ApiDocsToMarkdown},
	{Path: "/json-formatter", Name: "JsonFormatter", View: views.JsonFormatter},
	{Path: "/sql-compressor", Name: "SqlCompressor", View: views.SqlCompressor},
	{Path: "/java-to-json", Name: "JavaToJson", View: views.JavaToJson},
	{Path: "/unicode-converter", Name: "UnicodeConverter", View: views.UnicodeConverter},
}

// DefaultTable returns the application route table.
func DefaultTable() *Table {
	t, err := NewTable(defaultRoutes...)
	if err != nil {
		panic(err)
	}
	return t
}
