package view

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/opensarlab/osl-notebook-kit/config"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// ConfigPanel encapsulates the selector settings form and apply logic.
// It owns its widgets and writes back into *config.Config on ApplyChanges.
type ConfigPanel interface {
	Build(startRow int) (endRow int) // constructs widgets starting at startRow, returns next free row
	ApplyChanges() // parses widget text into underlying config and persists
}

type configPanel struct {
	cfg      *config.Config
	cfgPath  string
	logger   *slog.Logger
	onApply  func(*config.Config)
	applyBtn *ButtonWidget
	widgets  map[string]*TextWidget // keyed by internal field id
}

// NewConfigPanel creates the view bound to cfg. onApply, if set, runs after
// a successful save.
func NewConfigPanel(cfg *config.Config, cfgPath string, onApply func(*config.Config), logger *slog.Logger) ConfigPanel {
	return &configPanel{cfg: cfg, cfgPath: cfgPath, onApply: onApply, logger: logger, widgets: make(map[string]*TextWidget)}
}

func (v *configPanel) Build(startRow int) (row int) {
	c := v.cfg
	row = startRow
	makeRow := func(id, label, value string) {
		lbl := Label(Txt(label), Anchor("w"))
		Grid(lbl, Row(row), Column(4), Sticky("w"), Padx("0.4m"), Pady("0.15m"))
		w := Text(Height(1), Width(12))
		Grid(w, Row(row), Column(5), Sticky("we"), Padx("0.4m"), Pady("0.15m"))
		w.Delete("1.0", END)
		w.Insert("1.0", value)
		v.widgets[id] = w
		row++
	}
	makeRow("minSpanX", "Min Span X (px)", fmt.Sprintf("%.0f", c.MinSpanX))
	makeRow("minSpanY", "Min Span Y (px)", fmt.Sprintf("%.0f", c.MinSpanY))
	makeRow("buttons", "Buttons (e.g. 1,3)", joinInts(c.Buttons))
	makeRow("faceAlpha", "Fill Alpha (0-1)", fmt.Sprintf("%.2f", c.Style.FaceAlpha))
	makeRow("dark", "Dark (true/false)", fmt.Sprintf("%t", c.Style.Dark))
	v.applyBtn = Button(Txt("Apply Changes"), Command(func() { v.ApplyChanges() }))
	Grid(v.applyBtn, Row(row), Column(4), Columnspan(2), Sticky("we"), Padx("0.4m"), Pady("0.3m"))
	row++
	return row
}

func (v *configPanel) text(w *TextWidget) string {
	if w == nil {
		return ""
	}
	parts := w.Get("1.0", END)
	return strings.Join(parts, "")
}

func (v *configPanel) ApplyChanges() {
	if v.cfg == nil {
		return
	}
	cfg := *v.cfg // copy
	assignFloat := func(id string, dst *float64) {
		w := v.widgets[id]
		if w == nil {
			return
		}
		if f, ok := parseFloatField(strings.TrimSpace(v.text(w))); ok {
			*dst = f
		}
	}
	assignBool := func(id string, dst *bool) {
		w := v.widgets[id]
		if w == nil {
			return
		}
		if b, ok := parseBoolLoose(strings.TrimSpace(v.text(w))); ok {
			*dst = b
		}
	}
	assignFloat("minSpanX", &cfg.MinSpanX)
	assignFloat("minSpanY", &cfg.MinSpanY)
	assignFloat("faceAlpha", &cfg.Style.FaceAlpha)
	assignBool("dark", &cfg.Style.Dark)
	if w := v.widgets["buttons"]; w != nil {
		if b, ok := parseIntList(v.text(w)); ok {
			cfg.Buttons = b
		}
	}
	if err := cfg.Validate(); err != nil {
		if v.logger != nil {
			v.logger.Error("config validation failed", "error", err)
		}
		return
	}
	*v.cfg = cfg
	if err := v.cfg.Save(v.cfgPath); err != nil {
		if v.logger != nil {
			v.logger.Error("config save failed", "error", err)
		}
	} else {
		if v.logger != nil {
			v.logger.Info("config saved", "path", v.cfgPath)
		}
	}
	if v.onApply != nil {
		v.onApply(v.cfg)
	}
}

// parsing helpers (unexported)
func parseFloatField(s string) (float64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
func parseIntField(s string) (int, bool) {
	i, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, false
	}
	return i, true
}
func parseIntList(s string) ([]int, bool) {
	var out []int
	for _, f := range strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' || r == '\n' }) {
		i, ok := parseIntField(f)
		if !ok {
			return nil, false
		}
		out = append(out, i)
	}
	return out, len(out) > 0
}

func joinInts(v []int) string {
	parts := make([]string, len(v))
	for i, n := range v {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ",")
}

func parseBoolLoose(s string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "yes", "y", "on", "t":
		return true, true
	case "false", "0", "no", "n", "off", "f":
		return false, true
	default:
		return false, false
	}
}
