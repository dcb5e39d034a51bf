package deltalog

import (
	"context"
	"strconv"

	"golang.org/x/sync/errgroup"
)

// compare dispatches one (prior, latest) pair at path to the strategy its
// joint classification selects. called once per compared position; recursion
// into mappings & sequences re-enters here for every child pair.
func (c *Comparer) compare(ctx context.Context, prior, latest interface{}, path string) (Changelog, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if kindOf(prior) == kindUnsupported || kindOf(latest) == kindUnsupported {
		return nil, &UnsupportedValueError{Path: path}
	}

	switch classifyPair(prior, latest) {
	case bothMappings:
		return c.compareMappings(ctx, prior.(map[string]interface{}), latest.(map[string]interface{}), path)
	case bothSequences:
		return c.compareSequences(ctx, prior.([]interface{}), latest.([]interface{}), path)
	case bothDates:
		pt, _ := instant(prior)
		lt, _ := instant(latest)
		if pt.Equal(lt) {
			return nil, nil
		}
		return c.single(prior, latest, path, NoteUpdated)
	default:
		// scalar pair or a shape change (eg sequence -> string): the two
		// whole values are reported as one update
		if scalarsEqual(prior, latest) {
			return nil, nil
		}
		return c.single(prior, latest, path, NoteUpdated)
	}
}

// compareMappings walks two structurally-aligned mappings. prior is the
// source of truth for the main walk; keys only present in latest are swept
// afterward, so shared keys are visited exactly once per level.
//
// per-key work fans out across goroutines but results are collected
// positionally, by key order, so output ordering never depends on completion
// order. a failure in any key's subtree cancels the rest & discards all
// partial results.
func (c *Comparer) compareMappings(ctx context.Context, prior, latest map[string]interface{}, path string) (Changelog, error) {
	if equalByContent(prior, latest) {
		return nil, nil
	}

	keys := sortedKeys(prior)
	results := make([]Changelog, len(keys))
	g, gctx := errgroup.WithContext(ctx)
	for i, key := range keys {
		if _, skip := c.ignore[key]; skip {
			continue
		}
		g.Go(func() error {
			childPath := path + "." + key
			priorVal := prior[key]
			latestVal, ok := latest[key]
			if !ok {
				entry, err := c.buildEntry(priorVal, nil, childPath, NoteDeleted)
				if err != nil {
					return err
				}
				results[i] = Changelog{entry}
				return nil
			}

			cl, err := c.compare(gctx, priorVal, latestVal, childPath)
			if err != nil {
				return err
			}
			results[i] = cl
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var out Changelog
	for _, cl := range results {
		out = append(out, cl...)
	}

	// newly-added keys append after every prior-keyed difference. the ignore
	// list deliberately doesn't apply here: ignoring a key silences future
	// changes to it, its first appearance is still reported.
	for _, key := range sortedKeys(latest) {
		if _, ok := prior[key]; ok {
			continue
		}
		entry, err := c.buildEntry(nil, latest[key], path+"."+key, NoteAdded)
		if err != nil {
			return nil, err
		}
		out = append(out, entry)
	}
	return out, nil
}

// compareSequences is the positional analogue of compareMappings: indices of
// prior drive the main walk, trailing elements of latest sweep in as
// additions. the ignore list never applies to indices.
func (c *Comparer) compareSequences(ctx context.Context, prior, latest []interface{}, path string) (Changelog, error) {
	if equalByContent(prior, latest) {
		return nil, nil
	}

	results := make([]Changelog, len(prior))
	g, gctx := errgroup.WithContext(ctx)
	for i := range prior {
		g.Go(func() error {
			childPath := indexPath(path, i)
			if i >= len(latest) {
				entry, err := c.buildEntry(prior[i], nil, childPath, NoteDeleted)
				if err != nil {
					return err
				}
				results[i] = Changelog{entry}
				return nil
			}

			cl, err := c.compare(gctx, prior[i], latest[i], childPath)
			if err != nil {
				return err
			}
			results[i] = cl
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var out Changelog
	for _, cl := range results {
		out = append(out, cl...)
	}

	for i := len(prior); i < len(latest); i++ {
		entry, err := c.buildEntry(nil, latest[i], indexPath(path, i), NoteAdded)
		if err != nil {
			return nil, err
		}
		out = append(out, entry)
	}
	return out, nil
}

// single wraps one entry in a changelog
func (c *Comparer) single(prior, latest interface{}, path string, note Note) (Changelog, error) {
	entry, err := c.buildEntry(prior, latest, path, note)
	if err != nil {
		return nil, err
	}
	return Changelog{entry}, nil
}

func indexPath(path string, i int) string {
	return path + "[" + strconv.Itoa(i) + "]"
}
