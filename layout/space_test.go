package layout

import (
	"math"
	"testing"

	"github.com/tsawler/textpage/text"
)

func TestRemoveSpace(t *testing.T) {
	r := NewReconstructor()
	entities := charRow("ab", 0.1, 0.1, 0.01, 0.02)
	entities = append(entities,
		makeEntity(" ", 0.12, 0.1, 0.13, 0.12),  // normal space
		makeEntity(" ", 0.13, 0.1, 0.18, 0.12),  // 5x the median width
		makeEntity("  ", 0.18, 0.1, 0.25, 0.12), // two spaces, not a single glyph
	)
	entities = append(entities, charRow("cd", 0.25, 0.1, 0.01, 0.02)...)

	out := r.RemoveSpace(entities)

	if len(out) != len(entities)-1 {
		t.Fatalf("Expected %d entities, got %d", len(entities)-1, len(out))
	}
	for _, e := range out {
		if e.IsSpace() && e.Area().Width() > 0.03 {
			t.Errorf("Oversized space survived: %+v", e.Area())
		}
	}
}

func TestRemoveSpace_NoWidthInformation(t *testing.T) {
	r := NewReconstructor()
	entities := []text.Entity{
		makeEntity(" ", 0.1, 0.1, 0.5, 0.12),
	}
	if out := r.RemoveSpace(entities); len(out) != 1 {
		t.Errorf("Expected the space to be kept when no median is known, got %d entities", len(out))
	}
}

func TestRemoveSpace_Duplicates(t *testing.T) {
	tests := []struct {
		name     string
		overlap  float64
		entities []text.Entity
		want     []string
	}{
		{
			name:    "identical glyph drawn twice",
			overlap: 0.9,
			entities: []text.Entity{
				makeEntity("B", 0.10, 0.1, 0.11, 0.12),
				makeEntity("B", 0.10, 0.1, 0.11, 0.12),
			},
			want: []string{"B"},
		},
		{
			name:    "fake bold offset",
			overlap: 0.9,
			entities: []text.Entity{
				makeEntity("B", 0.1000, 0.1, 0.1100, 0.12),
				makeEntity("B", 0.1002, 0.1, 0.1102, 0.12),
			},
			want: []string{"B"},
		},
		{
			name:    "repeated letters side by side",
			overlap: 0.9,
			entities: []text.Entity{
				makeEntity("l", 0.10, 0.1, 0.11, 0.12),
				makeEntity("l", 0.11, 0.1, 0.12, 0.12),
			},
			want: []string{"l", "l"},
		},
		{
			name:    "different text at the same spot",
			overlap: 0.9,
			entities: []text.Entity{
				makeEntity("i", 0.10, 0.1, 0.11, 0.12),
				makeEntity("\u00ef", 0.10, 0.1, 0.11, 0.12),
			},
			want: []string{"i", "\u00ef"},
		},
		{
			name:    "check disabled",
			overlap: 0,
			entities: []text.Entity{
				makeEntity("B", 0.10, 0.1, 0.11, 0.12),
				makeEntity("B", 0.10, 0.1, 0.11, 0.12),
			},
			want: []string{"B", "B"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultConfig()
			config.DuplicateOverlap = tt.overlap
			got := texts(NewReconstructorWithConfig(config).RemoveSpace(tt.entities))
			if len(got) != len(tt.want) {
				t.Fatalf("Expected %q, got %q", tt.want, got)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Expected %q, got %q", tt.want, got)
				}
			}
		})
	}
}

func TestAddNecessarySpace_AbsoluteThreshold(t *testing.T) {
	config := DefaultConfig()
	config.SpaceGap = 0.05
	r := NewReconstructorWithConfig(config)

	entities := []text.Entity{
		makeEntity("cat", 0.30, 0.1, 0.40, 0.12),
		makeEntity("dog", 0.55, 0.1, 0.65, 0.12),
	}
	out, lines := r.AddNecessarySpace(entities, []LineSpan{{0, 2}})

	if len(out) != 3 {
		t.Fatalf("Expected 3 entities, got %d", len(out))
	}
	if out[1].Text() != " " {
		t.Errorf("Expected a space entity in the middle, got %q", out[1].Text())
	}
	space := out[1].Area()
	if space.Width() != 0 || math.Abs(space.Left-0.475) > 1e-9 {
		t.Errorf("Expected zero-width space at 0.475, got %+v", space)
	}
	if space.Top != 0.1 || space.Bottom != 0.12 {
		t.Errorf("Expected space to span the line band, got %+v", space)
	}
	if len(lines) != 1 || lines[0] != (LineSpan{0, 3}) {
		t.Errorf("Expected line span {0 3}, got %+v", lines)
	}
}

func TestAddNecessarySpace(t *testing.T) {
	tests := []struct {
		name     string
		entities []text.Entity
		lines    []LineSpan
		want     int
	}{
		{
			name: "gap below threshold",
			entities: []text.Entity{
				makeEntity("ab", 0.10, 0.1, 0.12, 0.12),
				makeEntity("cd", 0.122, 0.1, 0.142, 0.12),
			},
			lines: []LineSpan{{0, 2}},
			want:  2,
		},
		{
			name: "explicit space already present",
			entities: []text.Entity{
				makeEntity("ab ", 0.10, 0.1, 0.13, 0.12),
				makeEntity("cd", 0.15, 0.1, 0.17, 0.12),
			},
			lines: []LineSpan{{0, 2}},
			want:  2,
		},
		{
			name: "no space across lines",
			entities: []text.Entity{
				makeEntity("ab", 0.10, 0.1, 0.12, 0.12),
				makeEntity("cd", 0.50, 0.2, 0.52, 0.22),
			},
			lines: []LineSpan{{0, 1}, {1, 2}},
			want:  2,
		},
		{
			name: "word gap",
			entities: []text.Entity{
				makeEntity("ab", 0.10, 0.1, 0.12, 0.12),
				makeEntity("cd", 0.14, 0.1, 0.16, 0.12),
			},
			lines: []LineSpan{{0, 2}},
			want:  3,
		},
	}

	r := NewReconstructor()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, lines := r.AddNecessarySpace(tt.entities, tt.lines)
			if len(out) != tt.want {
				t.Errorf("Expected %d entities, got %d (%q)", tt.want, len(out), texts(out))
			}
			if len(lines) != len(tt.lines) || lines[len(lines)-1].End != len(out) {
				t.Errorf("Line spans not adjusted: %+v", lines)
			}
		})
	}
}
