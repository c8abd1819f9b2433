package feed

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/hobeone/pepfeed/pep"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// sourcePatterns match PEP sources inside a PEP root.
var sourcePatterns = []string{"pep-*.rst", "pep-*.txt"}

// CollectOptions controls how Collect reads a PEP root.
type CollectOptions struct {
	Workers     int
	SkipInvalid bool // log and skip PEPs with bad headers instead of failing
	Logger      logrus.FieldLogger
}

// Collect loads every PEP under root, at most opts.Workers at a time.  The
// returned documents are in file name order.
func Collect(ctx context.Context, root string, opts CollectOptions) ([]*pep.Document, error) {
	if _, err := os.Stat(root); err != nil {
		return nil, err
	}

	var paths []string
	for _, pattern := range sourcePatterns {
		m, err := filepath.Glob(filepath.Join(root, pattern))
		if err != nil {
			return nil, err
		}
		paths = append(paths, m...)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no PEPs found in %s", root)
	}
	sort.Strings(paths)

	logger := opts.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	workers := opts.Workers
	if workers < 1 {
		workers = 1
	}

	docs := make([]*pep.Document, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, p := range paths {
		i, p := i, p
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			d, err := pep.Load(p)
			if err != nil {
				var perr *pep.ParseError
				if opts.SkipInvalid && errors.As(err, &perr) {
					logger.WithError(err).Warnf("Skipping %s", p)
					return nil
				}
				return err
			}
			logger.Debugf("Loaded PEP %d from %s", d.Number, p)
			docs[i] = d
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	loaded := docs[:0]
	for _, d := range docs {
		if d != nil {
			loaded = append(loaded, d)
		}
	}
	logger.Infof("Loaded %d of %d PEPs from %s", len(loaded), len(paths), root)
	return loaded, nil
}
