package models

import "strings"

type Category struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

// Categories is the closed set of topics a fact can belong to
var Categories = []Category{
	{Name: "technology", Color: "#3b82f6"},
	{Name: "science", Color: "#16a34a"},
	{Name: "finance", Color: "#ef4444"},
	{Name: "society", Color: "#eab308"},
	{Name: "entertainment", Color: "#db2777"},
	{Name: "health", Color: "#14b8a6"},
	{Name: "history", Color: "#f97316"},
	{Name: "news", Color: "#8b5cf6"},
}

// LookupCategory matches name case-insensitively against the fixed set
func LookupCategory(name string) (Category, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, c := range Categories {
		if c.Name == name {
			return c, true
		}
	}
	return Category{}, false
}

// CategoryColor returns the display colour for name, or a neutral grey
func CategoryColor(name string) string {
	if c, ok := LookupCategory(name); ok {
		return c.Color
	}
	return "#78716c"
}
