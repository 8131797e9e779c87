package report

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/phoenixdev-512/Automated-Data-Integrity-Anomaly-Protocol/internal/domain"
)

// DefaultBaseName is the report file name without extension.
const DefaultBaseName = "FORENSIC_REPORT"

// WriteFile renders doc into path. The content goes to a temporary file in
// the same directory which is renamed over path only after a successful
// render, flush and sync. On failure the temporary file is removed and path
// is left untouched.
func WriteFile(path string, r Renderer, doc *Document) error {
	staged, err := stage(path, r, doc)
	if err != nil {
		return err
	}
	return staged.commit()
}

// stagedReport is a fully rendered and synced report waiting to be renamed
// over its final path.
type stagedReport struct {
	tmp  string
	path string
}

func stage(path string, r Renderer, doc *Document) (_ *stagedReport, err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return nil, fmt.Errorf("%w: create %s: %w", domain.ErrReportWriteFailure, path, err)
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	bw := bufio.NewWriter(tmp)
	if err = r.Render(bw, doc); err != nil {
		return nil, fmt.Errorf("%w: render %s: %w", domain.ErrReportWriteFailure, path, err)
	}
	if err = bw.Flush(); err != nil {
		return nil, fmt.Errorf("%w: flush %s: %w", domain.ErrReportWriteFailure, path, err)
	}
	if err = tmp.Sync(); err != nil {
		return nil, fmt.Errorf("%w: sync %s: %w", domain.ErrReportWriteFailure, path, err)
	}
	if err = tmp.Close(); err != nil {
		return nil, fmt.Errorf("%w: close %s: %w", domain.ErrReportWriteFailure, path, err)
	}
	return &stagedReport{tmp: tmp.Name(), path: path}, nil
}

func (s *stagedReport) commit() error {
	if err := os.Rename(s.tmp, s.path); err != nil {
		s.discard()
		return fmt.Errorf("%w: rename %s: %w", domain.ErrReportWriteFailure, s.path, err)
	}
	return nil
}

func (s *stagedReport) discard() {
	_ = os.Remove(s.tmp)
}

// Publisher writes a document once per renderer into a report directory.
type Publisher struct {
	dir       string
	baseName  string
	renderers []Renderer
}

// NewPublisher creates a Publisher. An empty baseName uses DefaultBaseName.
func NewPublisher(dir, baseName string, renderers ...Renderer) *Publisher {
	if baseName == "" {
		baseName = DefaultBaseName
	}
	return &Publisher{dir: dir, baseName: baseName, renderers: renderers}
}

// Publish renders every configured format to a temporary file first and
// renames them into place only once all of them succeeded. A failed render
// leaves the previous report files as they were.
func (p *Publisher) Publish(ctx context.Context, doc *Document) ([]string, error) {
	if err := os.MkdirAll(p.dir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: create report dir %s: %w", domain.ErrReportWriteFailure, p.dir, err)
	}

	staged := make([]*stagedReport, 0, len(p.renderers))
	discardAll := func() {
		for _, s := range staged {
			s.discard()
		}
	}
	for _, r := range p.renderers {
		if err := ctx.Err(); err != nil {
			discardAll()
			return nil, err
		}
		s, err := stage(filepath.Join(p.dir, p.baseName+r.Extension()), r, doc)
		if err != nil {
			discardAll()
			return nil, err
		}
		staged = append(staged, s)
	}

	written := make([]string, 0, len(staged))
	for i, s := range staged {
		if err := s.commit(); err != nil {
			// Formats renamed before this one already hold the new report.
			for _, rest := range staged[i+1:] {
				rest.discard()
			}
			return nil, err
		}
		written = append(written, s.path)
	}
	return written, nil
}
