package granule

import (
	"errors"
	"testing"
	"testing/fstest"
	"time"
)

const s1Granule = "S1A_IW_SLC__1SDV_20210704T161022_20210704T161049_038636_048F1C_0B2F"

func TestDateFromProductName(t *testing.T) {
	tok, ok := DateFromProductName(s1Granule)
	if !ok || tok != "20210704T161022" {
		t.Fatalf("unexpected token %q ok=%v", tok, ok)
	}
	if _, ok := DateFromProductName("no_date_here.tif"); ok {
		t.Fatalf("expected no token")
	}
}

func TestAcquisitionDate(t *testing.T) {
	d, err := AcquisitionDate(s1Granule)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !d.Equal(time.Date(2021, 7, 4, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected date %v", d)
	}
	if _, err := AcquisitionDate("S1A_IW_SLC__1SDV"); !errors.Is(err, ErrNoDate) {
		t.Fatalf("expected ErrNoDate, got %v", err)
	}
}

func TestProductDates_SortedUnique(t *testing.T) {
	got := ProductDates([]string{
		"S1B_20200102T000000_20200102T000030",
		"S1A_20191231T120000",
		"README.md",
	})
	want := []string{"20191231", "20200102"}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("got %v want %v", got, want)
	}
}

func TestPolarityFromPath(t *testing.T) {
	p, ok := PolarityFromPath("/data/rtc/S1A_20210704T161022_VH.tif")
	if !ok || p != "VH" {
		t.Fatalf("unexpected polarity %q ok=%v", p, ok)
	}
	if _, ok := PolarityFromPath("/data/rtc/S1A_20210704.tif"); ok {
		t.Fatalf("unexpected polarity match")
	}
}

func TestRTCPolarizations(t *testing.T) {
	fsys := fstest.MapFS{
		"p1/S1A_IW_20210704T161022_DVP_RTC30_G_gpuned_0B2F_VV.tif": {},
		"p1/S1A_IW_20210704T161022_DVP_RTC30_G_gpuned_0B2F_VH.tif": {},
		"p2/S1B_IW_20210710T161022_DVP_RTC30_G_gpuned_1C3D_VV.tiff": {},
		"p2/S1B_IW_20210710T161022_DVP_RTC30_G_gpuned_1C3D_ls_map.tif": {},
		"top_VV.tif": {},
	}
	got, err := RTCPolarizations(fsys)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 || got[0] != "VH" || got[1] != "VV" {
		t.Fatalf("unexpected polarizations %v", got)
	}
}

func TestPowerSet(t *testing.T) {
	got := PowerSet([]string{"VV", "VH"})
	want := map[string]bool{"VV": true, "VH": true, "VV and VH": true}
	if len(got) != len(want) {
		t.Fatalf("unexpected power set %v", got)
	}
	for _, g := range got {
		if !want[g] {
			t.Fatalf("unexpected member %q", g)
		}
	}
	if single := PowerSet([]string{"HH"}); len(single) != 1 || single[0] != "HH" {
		t.Fatalf("unexpected single power set %v", single)
	}
}
