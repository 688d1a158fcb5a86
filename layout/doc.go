// Package layout reconstructs reading order, words and lines from an
// unordered bag of positioned text entities.
//
// # Reconstruction Pipeline
//
// The [Reconstructor] runs a fixed sequence of passes, each taking the
// current entity sequence and returning a new one:
//
//  1. [Reconstructor.RemoveSpace] - drop oversized separator glyphs
//  2. [Reconstructor.MakeWord] - join characters into words (character
//     sources only)
//  3. [Reconstructor.CorrectTextOrder] - reorder drawing-order sources
//  4. [Reconstructor.MakeAndSortLines] - cluster into lines, sort lines top
//     to bottom and entities left to right
//  5. [Reconstructor.AddNecessarySpace] - insert spaces the source never
//     emitted
//
// Usage:
//
//	r := layout.NewReconstructor()
//	result := r.Run(entities, text.Character)
//	for _, line := range result.Lines {
//	    words := result.Entities[line.Start:line.End]
//	    // ...
//	}
//
// # Lines
//
// Lines are not objects that entities point back to. A [Result] holds the
// entity sequence and, separately, a partition of it into [LineSpan] index
// ranges, recomputed whenever the page is reconstructed.
//
// # Configuration
//
// Thresholds are relative to the page's character width:
//
//	config := layout.DefaultConfig()
//	config.SpaceGap = 0.05 // absolute gap for synthetic spaces
//	r := layout.NewReconstructorWithConfig(config)
package layout
