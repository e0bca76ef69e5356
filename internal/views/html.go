package views

import (
	"fmt"
	"html"
	"strings"
)

// EscapeHTML makes arbitrary text safe to embed in HTML element content or
// attribute values.
func EscapeHTML(s string) string {
	return html.EscapeString(s)
}

// RenderLogsHTML renders both logs as <li> lists. Every user-supplied field
// passes through EscapeHTML.
func RenderLogsHTML(data LogsPanelData) string {
	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html lang=\"ko\">\n<head><meta charset=\"utf-8\"><title>vaultos logs</title></head>\n<body>\n")
	b.WriteString("<h2>Decision Log</h2>\n<ul id=\"decision-log\">\n")
	writeLogItems(&b, data.DecisionLog, EmptyDecisionLogText, decisionClass)
	b.WriteString("</ul>\n<h2>Parking Lot</h2>\n<ul id=\"parking-lot\">\n")
	writeLogItems(&b, data.ParkingLot, EmptyParkingLotText, func(string) string { return "text-red-400" })
	b.WriteString("</ul>\n</body>\n</html>\n")
	return b.String()
}

func writeLogItems(b *strings.Builder, items []LogItemData, empty string, class func(string) string) {
	if len(items) == 0 {
		fmt.Fprintf(b, "<li class=\"text-gray-500 text-xs text-center\">%s</li>\n", EscapeHTML(empty))
		return
	}
	for _, item := range items {
		fmt.Fprintf(b, "<li class=\"p-2 bg-gray-800 rounded-md break-words\"><span class=\"font-bold %s\">%s</span>: %s <span class=\"text-xs text-gray-500 block\">%s</span></li>\n",
			class(item.Decision),
			EscapeHTML(item.Decision),
			EscapeHTML(item.Idea),
			EscapeHTML(item.Timestamp),
		)
	}
}

func decisionClass(decision string) string {
	if decision == "[채택]" {
		return "text-green-400"
	}
	return "text-yellow-400"
}
