package config

import "github.com/opensarlab/osl-notebook-kit/domain/selection"

// AOIStore persists confirmed areas into a Config file.
type AOIStore struct {
	Cfg  *Config
	Path string
}

// SaveAOI records the corners on Cfg and writes it to Path.
func (s AOIStore) SaveAOI(p1, p2 selection.Point) error {
	if s.Cfg == nil {
		return nil
	}
	s.Cfg.AOIX1, s.Cfg.AOIY1 = p1.X, p1.Y
	s.Cfg.AOIX2, s.Cfg.AOIY2 = p2.X, p2.Y
	s.Cfg.AOISaved = true
	if s.Path == "" {
		return nil
	}
	return s.Cfg.Save(s.Path)
}

// AOI returns the persisted corners.
func (c *Config) AOI() (p1, p2 selection.Point) {
	return selection.Point{X: c.AOIX1, Y: c.AOIY1}, selection.Point{X: c.AOIX2, Y: c.AOIY2}
}
