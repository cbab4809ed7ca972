package config

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Style is the plot styling passed explicitly to renderers and views.
type Style struct {
	FontSize    int     `json:"font_size" yaml:"font_size" toml:"font_size"`
	Dark        bool    `json:"dark" yaml:"dark" toml:"dark"`
	FaceColor   string  `json:"face_color" yaml:"face_color" toml:"face_color"`
	EdgeColor   string  `json:"edge_color" yaml:"edge_color" toml:"edge_color"`
	FaceAlpha   float64 `json:"face_alpha" yaml:"face_alpha" toml:"face_alpha"`
	PointColor  string  `json:"point_color" yaml:"point_color" toml:"point_color"`
	LineColor   string  `json:"line_color" yaml:"line_color" toml:"line_color"`
	ExtentColor string  `json:"extent_color" yaml:"extent_color" toml:"extent_color"`
	CommonColor string  `json:"common_color" yaml:"common_color" toml:"common_color"`
}

// Config holds runtime configuration for the selectors and job tooling.
// Fields may be loaded from a JSON, YAML or TOML file.
type Config struct {
	Debug bool  `json:"debug" yaml:"debug" toml:"debug"`
	Style Style `json:"style" yaml:"style" toml:"style"`

	// Selector behaviour
	Buttons       []int    `json:"buttons" yaml:"buttons" toml:"buttons"`
	MinSpanX      float64  `json:"min_span_x" yaml:"min_span_x" toml:"min_span_x"`
	MinSpanY      float64  `json:"min_span_y" yaml:"min_span_y" toml:"min_span_y"`
	ActivateKeys  []string `json:"activate_keys" yaml:"activate_keys" toml:"activate_keys"`
	DeactivateKey []string `json:"deactivate_keys" yaml:"deactivate_keys" toml:"deactivate_keys"`
	FigWidth      int      `json:"fig_width" yaml:"fig_width" toml:"fig_width"`
	FigHeight     int      `json:"fig_height" yaml:"fig_height" toml:"fig_height"`

	// Last confirmed AOI in image coordinates. Zero-span areas are valid.
	AOISaved bool    `json:"aoi_saved" yaml:"aoi_saved" toml:"aoi_saved"`
	AOIX1    float64 `json:"aoi_x1" yaml:"aoi_x1" toml:"aoi_x1"`
	AOIY1    float64 `json:"aoi_y1" yaml:"aoi_y1" toml:"aoi_y1"`
	AOIX2    float64 `json:"aoi_x2" yaml:"aoi_x2" toml:"aoi_x2"`
	AOIY2    float64 `json:"aoi_y2" yaml:"aoi_y2" toml:"aoi_y2"`

	// Remote metadata lookup
	SearchURL          string `json:"search_url" yaml:"search_url" toml:"search_url"`
	HTTPTimeoutSeconds int    `json:"http_timeout_seconds" yaml:"http_timeout_seconds" toml:"http_timeout_seconds"`
	CachePath          string `json:"cache_path" yaml:"cache_path" toml:"cache_path"`
}

const DefaultSearchURL = "https://api.daac.asf.alaska.edu/services/search/param"

// DefaultStyle returns the light-mode plot style.
func DefaultStyle() Style {
	return Style{
		FontSize:    12,
		FaceColor:   "#ff0000",
		EdgeColor:   "#ffff00",
		FaceAlpha:   0.3,
		PointColor:  "#ff0000",
		LineColor:   "#1f77b4",
		ExtentColor: "#ffa500",
		CommonColor: "#008000",
	}
}

// DefaultConfig returns a Config populated with standard defaults.
func DefaultConfig() *Config {
	return &Config{
		Debug:              false,
		Style:              DefaultStyle(),
		Buttons:            []int{1, 3},
		MinSpanX:           0,
		MinSpanY:           0,
		ActivateKeys:       []string{"a", "A"},
		DeactivateKey:      []string{"q", "Q"},
		FigWidth:           1000,
		FigHeight:          800,
		SearchURL:          DefaultSearchURL,
		HTTPTimeoutSeconds: 30,
		CachePath:          "",
	}
}

// Validate clamps/normalizes values to safe ranges.
func (c *Config) Validate() error {
	def := DefaultStyle()
	if c.Style.FontSize <= 0 {
		c.Style.FontSize = def.FontSize
	}
	if c.Style.FaceAlpha < 0 || c.Style.FaceAlpha > 1 {
		c.Style.FaceAlpha = def.FaceAlpha
	}
	fill := func(dst *string, v string) {
		if strings.TrimSpace(*dst) == "" {
			*dst = v
		}
	}
	fill(&c.Style.FaceColor, def.FaceColor)
	fill(&c.Style.EdgeColor, def.EdgeColor)
	fill(&c.Style.PointColor, def.PointColor)
	fill(&c.Style.LineColor, def.LineColor)
	fill(&c.Style.ExtentColor, def.ExtentColor)
	fill(&c.Style.CommonColor, def.CommonColor)

	buttons := make([]int, 0, len(c.Buttons))
	for _, b := range c.Buttons {
		if b >= 1 && b <= 3 {
			buttons = append(buttons, b)
		}
	}
	if len(buttons) == 0 {
		buttons = []int{1, 3}
	}
	c.Buttons = buttons
	if c.MinSpanX < 0 {
		c.MinSpanX = 0
	}
	if c.MinSpanY < 0 {
		c.MinSpanY = 0
	}
	if len(c.ActivateKeys) == 0 {
		c.ActivateKeys = []string{"a", "A"}
	}
	if len(c.DeactivateKey) == 0 {
		c.DeactivateKey = []string{"q", "Q"}
	}
	if c.FigWidth < 200 {
		c.FigWidth = 1000
	}
	if c.FigHeight < 150 {
		c.FigHeight = 800
	}
	if strings.TrimSpace(c.SearchURL) == "" {
		c.SearchURL = DefaultSearchURL
	}
	if c.HTTPTimeoutSeconds <= 0 {
		c.HTTPTimeoutSeconds = 30
	}
	return nil
}

// HTTPTimeout returns the metadata lookup timeout.
func (c *Config) HTTPTimeout() time.Duration {
	return time.Duration(c.HTTPTimeoutSeconds) * time.Second
}

// HasAOI reports whether an AOI was persisted, including zero-span ones.
// Files written before aoi_saved existed count when their area is non-empty.
func (c *Config) HasAOI() bool {
	return c.AOISaved || (c.AOIX1 != c.AOIX2 && c.AOIY1 != c.AOIY2)
}

type format int

const (
	formatJSON format = iota
	formatYAML
	formatTOML
)

func formatOf(path string) format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return formatYAML
	case ".toml":
		return formatTOML
	}
	return formatJSON
}

// Load attempts to read configuration from the given path. YAML is used for
// .yaml/.yml files, TOML for .toml, JSON otherwise. If the file does not
// exist it returns DefaultConfig(). On decode error it returns defaults with
// the error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	switch formatOf(path) {
	case formatYAML:
		err = yaml.Unmarshal(data, cfg)
	case formatTOML:
		err = toml.Unmarshal(data, cfg)
	default:
		err = json.Unmarshal(data, cfg)
	}
	if err != nil {
		return DefaultConfig(), err
	}
	_ = cfg.Validate()
	return cfg, nil
}

// Save writes the configuration to the given path as YAML, TOML or indented
// JSON depending on the extension.
func (c *Config) Save(path string) error {
	_ = c.Validate()
	var (
		data []byte
		err  error
	)
	switch formatOf(path) {
	case formatYAML:
		data, err = yaml.Marshal(c)
	case formatTOML:
		var buf bytes.Buffer
		err = toml.NewEncoder(&buf).Encode(c)
		data = buf.Bytes()
	default:
		data, err = json.MarshalIndent(c, "", "  ")
	}
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
