// seehuhn.de/go/fontmerge - consolidation of subsetted fonts across documents
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package fontmerge

import (
	"context"
	"fmt"
	"sync"
)

// A Source supplies the font definitions of one document.  Implementations
// parse the document format; the glyph outlines must already be resolved
// into [GlyphData].
type Source interface {
	ReadFonts(ctx context.Context) ([]*RawFont, error)
}

// A Builder materializes one binary font file per group and returns a
// reference to it (typically a file name).  Groups share no mutable state
// once consolidation has run, so BuildFont may be called concurrently for
// different groups.
type Builder interface {
	BuildFont(g *Group) (string, error)
}

// A Batch collects the fonts of a batch of documents and consolidates them.
//
// Documents must be added in their batch order, because character code
// assignment is a sequential, order-sensitive pass.  A Batch must not be
// used concurrently.
type Batch struct {
	opt      *Options
	assigner *Assigner
	fonts    []*Font
	groups   []*Group
	numDocs  int
}

// NewBatch creates an empty batch.  opt may be nil.
func NewBatch(opt *Options) *Batch {
	return &Batch{
		opt:      MergeOptions(opt, defaultOptions()),
		assigner: NewAssigner(),
	}
}

// AddDocument adds the fonts of the next document to the batch, resolving
// their character codes.  Fonts must be given in the order their defining
// tags appear in the document.
func (b *Batch) AddDocument(fonts []*RawFont) error {
	doc := b.numDocs
	b.numDocs++
	for _, raw := range fonts {
		id := FontID{Doc: doc, Num: raw.Num}
		if raw.HasKerning {
			return &UnsupportedError{Font: id, Feature: "kerning"}
		}
		b.fonts = append(b.fonts, &Font{
			ID:      id,
			Name:    raw.Name,
			Metrics: raw.Metrics,
			Glyphs:  b.assigner.AssignCodes(raw.Glyphs),
		})
	}
	Logger().Debug("document added", "doc", doc, "fonts", len(fonts))
	return nil
}

// ReadDocuments reads all documents concurrently, one worker per document,
// and then adds the results in document order, so that code assignment is
// deterministic regardless of the interleaving of the reads.
func (b *Batch) ReadDocuments(ctx context.Context, docs []Source) error {
	results := make([][]*RawFont, len(docs))
	errs := make([]error, len(docs))

	var wg sync.WaitGroup
	for i, src := range docs {
		wg.Add(1)
		go func(i int, src Source) {
			defer wg.Done()
			results[i], errs[i] = src.ReadFonts(ctx)
		}(i, src)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			return fmt.Errorf("document %d: %w", b.numDocs+i, err)
		}
	}
	for _, fonts := range results {
		if err := b.AddDocument(fonts); err != nil {
			return err
		}
	}
	return nil
}

// Consolidate merges compatible fonts into shared groups, assigns every
// group a unique name, builds one font file per group using the given
// builder, and returns the mapping from original font identity to the
// consolidated font records.  Each record now carries its group's name and
// font file reference, but keeps its own glyph sequence.
//
// builder may be nil, in which case no font files are built and the
// FontFile fields are left empty.
func (b *Batch) Consolidate(builder Builder) (map[FontID]*Font, error) {
	groups := make([]*Group, len(b.fonts))
	for i, f := range b.fonts {
		groups[i] = newGroup(f)
	}
	if b.opt.GroupFonts {
		groups = mergeGroups(groups)
	}
	assignNames(groups, b.opt.KeepFontNames)

	if builder != nil {
		if err := b.buildAll(groups, builder); err != nil {
			return nil, err
		}
	}

	b.groups = groups
	Logger().Info("fonts consolidated",
		"documents", b.numDocs,
		"fonts", len(b.fonts),
		"groups", len(groups))
	return ungroup(groups), nil
}

// Groups returns the consolidated groups, in their final order.  The result
// is only valid after Consolidate has run.
func (b *Batch) Groups() []*Group {
	return b.groups
}

// buildAll builds the font files for all groups, using up to opt.Builders
// concurrent builder calls.  The first error aborts the batch.
func (b *Batch) buildAll(groups []*Group, builder Builder) error {
	sem := make(chan struct{}, b.opt.Builders)
	errs := make([]error, len(groups))

	var wg sync.WaitGroup
	for i, g := range groups {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, g *Group) {
			defer wg.Done()
			defer func() { <-sem }()
			ref, err := builder.BuildFont(g)
			if err != nil {
				errs[i] = fmt.Errorf("font %q: %w", g.Name, err)
				return
			}
			g.FontFile = ref
			Logger().Debug("font file built",
				"name", g.Name, "members", len(g.members))
		}(i, g)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
