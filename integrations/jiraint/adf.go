// Copyright 2026 l3montree GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package jiraint

import "strings"

// ADF is the atlassian document format jira cloud expects for rich text fields.
type ADF struct {
	Version int          `json:"version"`
	Type    string       `json:"type"`
	Content []ADFContent `json:"content"`
}

type ADFContent struct {
	Type    string             `json:"type"`
	Text    string             `json:"text,omitempty"`
	Marks   []ADFMark          `json:"marks,omitempty"`
	Content []ADFContent       `json:"content,omitempty"`
	Attrs   *ADFMarkAttributes `json:"attrs,omitempty"`
}

type ADFMark struct {
	Type  string             `json:"type"`
	Attrs *ADFMarkAttributes `json:"attrs,omitempty"`
}

type ADFMarkAttributes struct {
	Level    int    `json:"level,omitempty"`
	Href     string `json:"href,omitempty"`
	Language string `json:"language,omitempty"`
}

func textNode(text string) ADFContent {
	if strings.HasPrefix(text, "https://") || strings.HasPrefix(text, "http://") {
		return ADFContent{Type: "text", Text: text, Marks: []ADFMark{{Type: "link", Attrs: &ADFMarkAttributes{Href: text}}}}
	}
	return ADFContent{Type: "text", Text: text}
}

// PlainTextToADF converts plain text into paragraphs. Empty lines separate paragraphs,
// lines starting with "- " become a bullet list.
func PlainTextToADF(text string) ADF {
	doc := ADF{Version: 1, Type: "doc", Content: []ADFContent{}}
	var bullets []ADFContent
	var paragraph []ADFContent

	flushParagraph := func() {
		if len(paragraph) > 0 {
			doc.Content = append(doc.Content, ADFContent{Type: "paragraph", Content: paragraph})
			paragraph = nil
		}
	}
	flushBullets := func() {
		if len(bullets) > 0 {
			doc.Content = append(doc.Content, ADFContent{Type: "bulletList", Content: bullets})
			bullets = nil
		}
	}

	for _, line := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n") {
		trimmed := strings.TrimSpace(line)
		switch {
		case trimmed == "":
			flushParagraph()
			flushBullets()
		case strings.HasPrefix(trimmed, "- "):
			flushParagraph()
			bullets = append(bullets, ADFContent{Type: "listItem", Content: []ADFContent{
				{Type: "paragraph", Content: []ADFContent{textNode(strings.TrimPrefix(trimmed, "- "))}},
			}})
		default:
			flushBullets()
			if len(paragraph) > 0 {
				paragraph = append(paragraph, ADFContent{Type: "hardBreak"})
			}
			paragraph = append(paragraph, textNode(trimmed))
		}
	}
	flushParagraph()
	flushBullets()
	return doc
}
