package trackers

import (
	"path/filepath"
	"testing"

	ts "github.com/blocklearn/blocklearn/timestep"
)

// TestReturnTracksEpisodicReturn feeds the tracker two hand-built
// episodes and ensures the saved returns round-trip through disk.
func TestReturnTracksEpisodicReturn(t *testing.T) {
	file := filepath.Join(t.TempDir(), "returns.bin")
	tracker := NewReturn(file)

	// First episode: rewards 0, 1, 2, then a final step worth 3
	tracker.Track(ts.New(ts.First, 0, 1, nil, 0))
	tracker.Track(ts.New(ts.Mid, 1, 1, nil, 1))
	tracker.Track(ts.New(ts.Mid, 2, 1, nil, 2))
	tracker.Track(ts.New(ts.Last, 3, 1, nil, 3))

	// Second episode: a single final step worth 5
	tracker.Track(ts.New(ts.First, 0, 1, nil, 0))
	tracker.Track(ts.New(ts.Last, 5, 1, nil, 1))

	tracker.Save()
	returns := LoadData(file)

	if len(returns) != 2 {
		t.Fatalf("saved %d returns, expected 2", len(returns))
	}
	if returns[0] != 6.0 {
		t.Errorf("first episode return %v, expected 6", returns[0])
	}
	if returns[1] != 5.0 {
		t.Errorf("second episode return %v, expected 5", returns[1])
	}
}

func TestEpisodeLengthTracksFinishedEpisodes(t *testing.T) {
	file := filepath.Join(t.TempDir(), "lengths.bin")
	tracker := NewEpisodeLength(file)

	tracker.Track(ts.New(ts.First, 0, 1, nil, 0))
	tracker.Track(ts.New(ts.Mid, 0, 1, nil, 1))
	tracker.Track(ts.New(ts.Last, 0, 1, nil, 2))

	// An unfinished episode is not recorded
	tracker.Track(ts.New(ts.First, 0, 1, nil, 0))
	tracker.Track(ts.New(ts.Mid, 0, 1, nil, 1))

	tracker.Save()
	lengths := LoadData(file)

	if len(lengths) != 1 {
		t.Fatalf("saved %d lengths, expected 1", len(lengths))
	}
	if lengths[0] != 2 {
		t.Errorf("episode length %v, expected 2", lengths[0])
	}
}
