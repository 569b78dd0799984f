package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/masajidusa/pipeline/internal/normalize"
	"github.com/masajidusa/pipeline/internal/store"
	"github.com/masajidusa/pipeline/internal/types"
)

var removeSentinel = []string{normalize.UnknownName}

func seedRegion(t *testing.T, st *store.Store, regionID, display string, names ...string) {
	t.Helper()
	set := types.RegionSet{RegionID: regionID, DisplayName: display}
	for i, name := range names {
		set.Places = append(set.Places, types.Place{
			ID:          fmt.Sprintf("node_%s_%d", regionID, i),
			Name:        name,
			Coordinates: types.Coordinates{Lat: 40.1, Lon: -75.0},
			OSMType:     "node",
			OSMID:       int64(i),
		})
	}
	if err := st.Save(set); err != nil {
		t.Fatalf("Save(%s) error = %v", regionID, err)
	}
}

func TestCleanupRemovesSentinelRecords(t *testing.T) {
	p, st, _ := newTestPipeline(t, testCatalog, &fakeFetcher{})
	seedRegion(t, st, "new_jersey", "New Jersey", normalize.UnknownName, "Masjid Al-Noor")

	report, err := p.Cleanup(removeSentinel, "")
	if err != nil {
		t.Fatalf("Cleanup() error = %v", err)
	}
	if report.RemovedTotal != 1 {
		t.Errorf("RemovedTotal = %d, want 1", report.RemovedTotal)
	}

	nj, err := st.Load("new_jersey")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if nj.Count != 1 || len(nj.Places) != 1 {
		t.Fatalf("Count = %d, len(Places) = %d; want 1 and 1", nj.Count, len(nj.Places))
	}
	if nj.Places[0].Name != "Masjid Al-Noor" {
		t.Errorf("remaining record = %q, want Masjid Al-Noor", nj.Places[0].Name)
	}

	if report.Index == nil {
		t.Fatal("report.Index = nil, want rebuilt index")
	}
	if report.Index.RegionCounts["New Jersey"] != 1 {
		t.Errorf("index count for New Jersey = %d, want 1", report.Index.RegionCounts["New Jersey"])
	}
}

func TestCleanupDropsEmptiedRegionFromIndex(t *testing.T) {
	p, st, _ := newTestPipeline(t, testCatalog, &fakeFetcher{})
	seedRegion(t, st, "wyoming", "Wyoming", normalize.UnknownName)

	report, err := p.Cleanup(removeSentinel, "")
	if err != nil {
		t.Fatalf("Cleanup() error = %v", err)
	}
	// The file survives as zero-count but leaves the index.
	wy, err := st.Load("wyoming")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if wy.Count != 0 {
		t.Errorf("Count = %d, want 0", wy.Count)
	}
	if _, ok := report.Index.RegionCounts["Wyoming"]; ok {
		t.Error("emptied region still present in index")
	}
}

func TestCleanupIdempotent(t *testing.T) {
	p, st, _ := newTestPipeline(t, testCatalog, &fakeFetcher{})
	seedRegion(t, st, "new_jersey", "New Jersey", normalize.UnknownName, "Masjid Al-Noor", "Masjid An-Nur")

	first, err := p.Cleanup(removeSentinel, "")
	if err != nil {
		t.Fatalf("first Cleanup() error = %v", err)
	}
	if first.RemovedTotal != 1 {
		t.Fatalf("first RemovedTotal = %d, want 1", first.RemovedTotal)
	}

	afterFirst, err := st.Load("new_jersey")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	second, err := p.Cleanup(removeSentinel, "")
	if err != nil {
		t.Fatalf("second Cleanup() error = %v", err)
	}
	if second.RemovedTotal != 0 {
		t.Errorf("second RemovedTotal = %d, want 0", second.RemovedTotal)
	}

	afterSecond, err := st.Load("new_jersey")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !reflect.DeepEqual(afterFirst.Places, afterSecond.Places) {
		t.Error("second cleanup changed the region file")
	}
}

func TestCleanupEmptyPolicyKeepsSentinels(t *testing.T) {
	p, st, _ := newTestPipeline(t, testCatalog, &fakeFetcher{})
	seedRegion(t, st, "new_jersey", "New Jersey", normalize.UnknownName, "Masjid Al-Noor")

	report, err := p.Cleanup(nil, "")
	if err != nil {
		t.Fatalf("Cleanup() error = %v", err)
	}
	if report.RemovedTotal != 0 {
		t.Errorf("RemovedTotal = %d, want 0 with empty policy", report.RemovedTotal)
	}
	nj, err := st.Load("new_jersey")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if nj.Count != 2 {
		t.Errorf("Count = %d, want 2 (nothing purged)", nj.Count)
	}
}

func TestCleanupHaltsOnMalformedFile(t *testing.T) {
	p, st, dir := newTestPipeline(t, testCatalog, &fakeFetcher{})
	seedRegion(t, st, "new_jersey", "New Jersey", "Masjid Al-Noor")

	if err := os.WriteFile(dir.RegionPath("broken"), []byte("{"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	_, err := p.Cleanup(removeSentinel, "")
	if err == nil {
		t.Fatal("Cleanup() error = nil, want halt on malformed file")
	}
	// The diagnostic names the offending file.
	if want := dir.RegionPath("broken"); !strings.Contains(err.Error(), want) {
		t.Errorf("error %q does not name %s", err, want)
	}
}

func TestCleanupMirrors(t *testing.T) {
	p, st, _ := newTestPipeline(t, testCatalog, &fakeFetcher{})
	seedRegion(t, st, "new_jersey", "New Jersey", "Masjid Al-Noor")

	mirror := t.TempDir()
	report, err := p.Cleanup(removeSentinel, mirror)
	if err != nil {
		t.Fatalf("Cleanup() error = %v", err)
	}
	if !report.Mirrored {
		t.Fatal("Mirrored = false, want true when mirror dir exists")
	}
	if _, err := os.Stat(filepath.Join(mirror, "_index.json")); err != nil {
		t.Errorf("mirror missing _index.json: %v", err)
	}
	if _, err := os.Stat(filepath.Join(mirror, "states", "new_jersey.json")); err != nil {
		t.Errorf("mirror missing states/new_jersey.json: %v", err)
	}
}

func TestCleanupSkipsMissingMirrorDir(t *testing.T) {
	p, st, _ := newTestPipeline(t, testCatalog, &fakeFetcher{})
	seedRegion(t, st, "new_jersey", "New Jersey", "Masjid Al-Noor")

	report, err := p.Cleanup(removeSentinel, filepath.Join(t.TempDir(), "does-not-exist"))
	if err != nil {
		t.Fatalf("Cleanup() error = %v", err)
	}
	if report.Mirrored {
		t.Error("Mirrored = true, want false for missing mirror dir")
	}
}

