package pretty

import (
	"fmt"
	"sort"
	"strings"

	"github.com/yaklabco/mdlconf/pkg/config"
	"github.com/yaklabco/mdlconf/pkg/schema"
)

// Table formatting constants.
const (
	columnGap      = 2
	minRuleWidth   = 6
	minNameWidth   = 12
	lightSeparator = "-"
)

// SettingsTable renders the effective settings of a configuration as an
// aligned RULE / NAME / SETTING table. Explicitly configured rules come
// first in document order; remaining known rules follow sorted by ID,
// showing the inherited default. Width bounds the setting column;
// 0 means unbounded.
func (s *Styles) SettingsTable(cfg *config.Config, registry *schema.Registry, width int) string {
	rows := settingsRows(cfg, registry)
	if len(rows) == 0 {
		return ""
	}

	ruleWidth, nameWidth := minRuleWidth, minNameWidth
	for _, row := range rows {
		ruleWidth = max(ruleWidth, len(row.rule))
		nameWidth = max(nameWidth, len(row.name))
	}

	var builder strings.Builder
	gap := strings.Repeat(" ", columnGap)

	builder.WriteString(s.TableHeader.Render(pad("RULE", ruleWidth)))
	builder.WriteString(gap)
	builder.WriteString(s.TableHeader.Render(pad("NAME", nameWidth)))
	builder.WriteString(gap)
	builder.WriteString(s.TableHeader.Render("SETTING"))
	builder.WriteString("\n")
	builder.WriteString(s.TableSeparator.Render(strings.Repeat(lightSeparator, ruleWidth+nameWidth+columnGap*2+7)))
	builder.WriteString("\n")

	settingWidth := 0
	if width > 0 {
		settingWidth = max(width-ruleWidth-nameWidth-columnGap*2, len("disabled (default)"))
	}

	for _, row := range rows {
		builder.WriteString(pad(row.rule, ruleWidth))
		builder.WriteString(gap)
		builder.WriteString(s.Dim.Render(pad(row.name, nameWidth)))
		builder.WriteString(gap)
		setting := truncate(row.setting, settingWidth)
		if row.enabled {
			builder.WriteString(setting)
		} else {
			builder.WriteString(s.Disabled.Render(setting))
		}
		builder.WriteString("\n")
	}

	return builder.String()
}

type settingsRow struct {
	rule    string
	name    string
	setting string
	enabled bool
}

// settingsRows flattens a configuration to display rows.
func settingsRows(cfg *config.Config, registry *schema.Registry) []settingsRow {
	var rows []settingsRow
	seen := make(map[string]bool)

	appendRow := func(id string, inherited bool) {
		setting := cfg.Resolve(id)
		name := ""
		if rule, ok := registry.Get(id); ok {
			name = rule.Name
		}
		rows = append(rows, settingsRow{
			rule:    id,
			name:    name,
			setting: FormatSetting(setting, inherited),
			enabled: setting.Enabled(),
		})
		seen[id] = true
	}

	for _, code := range cfg.Codes() {
		appendRow(code, false)
	}
	for _, id := range registry.IDs() {
		if !seen[id] {
			appendRow(id, true)
		}
	}
	return rows
}

// FormatSetting renders an effective setting as a short display string.
func FormatSetting(setting config.Setting, inherited bool) string {
	suffix := ""
	if inherited {
		suffix = " (default)"
	}

	if setting.IsBool() {
		if setting.Enabled() {
			return "enabled" + suffix
		}
		return "disabled" + suffix
	}

	names := make([]string, 0, len(setting.Params))
	for name := range setting.Params {
		names = append(names, name)
	}
	sort.Strings(names)

	pairs := make([]string, 0, len(names))
	for _, name := range names {
		pairs = append(pairs, fmt.Sprintf("%s=%v", name, setting.Params[name]))
	}
	return strings.Join(pairs, ", ") + suffix
}

// pad right-pads a string to the given width.
func pad(value string, width int) string {
	if len(value) >= width {
		return value
	}
	return value + strings.Repeat(" ", width-len(value))
}
