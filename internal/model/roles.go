package model

// RoleAbbreviations maps AT-SPI role names to LDTP name prefixes.
var RoleAbbreviations = map[string]string{
	"alert":           "dlg",
	"calendar":        "cal",
	"canvas":          "cnvs",
	"check box":       "chk",
	"check menu item": "mnu",
	"combo box":       "cbo",
	"dialog":          "dlg",
	"embedded":        "emb",
	"entry":           "txt",
	"filler":          "flr",
	"frame":           "frm",
	"html container":  "html",
	"icon":            "ico",
	"label":           "lbl",
	"layered pane":    "pane",
	"link":            "hlnk",
	"list":            "lst",
	"list item":       "lst",
	"menu":            "mnu",
	"menu bar":        "mbr",
	"menu item":       "mnu",
	"page tab":        "ptab",
	"page tab list":   "ptl",
	"panel":           "pnl",
	"password text":   "txt",
	"popup menu":      "pop",
	"progress bar":    "pbar",
	"push button":     "btn",
	"radio button":    "rbtn",
	"radio menu item": "mnu",
	"scroll bar":      "scbr",
	"scroll pane":     "scpn",
	"separator":       "spr",
	"slider":          "sldr",
	"spin button":     "sbtn",
	"split pane":      "splt",
	"status bar":      "stat",
	"table":           "tbl",
	"table cell":      "tblc",
	"text":            "txt",
	"toggle button":   "tbtn",
	"tool bar":        "tbar",
	"tree":            "tree",
	"tree item":       "tree",
	"tree table":      "ttbl",
	"window":          "frm",
}

// UnknownAbbreviation is the prefix for roles without an LDTP abbreviation.
const UnknownAbbreviation = "ukn"

// TopLevelRoles are the roles that count as windows.
var TopLevelRoles = map[string]bool{
	"frame":  true,
	"dialog": true,
	"alert":  true,
	"window": true,
}

// Abbreviation converts an accessibility role to its LDTP prefix.
func Abbreviation(role string) string {
	if short, ok := RoleAbbreviations[role]; ok {
		return short
	}
	return UnknownAbbreviation
}
