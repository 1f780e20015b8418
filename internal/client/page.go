package client

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	log "github.com/sirupsen/logrus"

	"menuparser/internal/menu"
)

const (
	ErrorMessage   = "Error processing file. Please try again."
	CopyResetDelay = 2 * time.Second
)

// State is a snapshot of the page. MenuItems must not be modified.
type State struct {
	IsUploading bool
	MenuItems   []menu.Item
	Error       string
	Copied      bool
}

// Page drives one menu upload at a time against the processing endpoint and
// keeps the last successful result.
type Page struct {
	http      *resty.Client
	clipboard Clipboard
	delay     time.Duration

	mu        sync.Mutex
	state     State
	copyReset *time.Timer
	onChange  func(State)
}

type PageOption func(*Page)

func WithCopyResetDelay(d time.Duration) PageOption {
	return func(p *Page) { p.delay = d }
}

// WithOnChange registers a callback invoked after every state transition.
func WithOnChange(fn func(State)) PageOption {
	return func(p *Page) { p.onChange = fn }
}

func NewPage(baseURL string, clipboard Clipboard, opts ...PageOption) *Page {
	p := &Page{
		http: resty.New().
			SetBaseURL(strings.TrimRight(baseURL, "/")).
			SetRetryCount(0),
		clipboard: clipboard,
		delay:     CopyResetDelay,
		state:     State{MenuItems: []menu.Item{}},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *Page) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

func (p *Page) IsUploading() bool {
	return p.State().IsUploading
}

// HandleUpload posts the file as multipart field "file" to /api/process.
// On failure the previous items are kept and the error message is set.
func (p *Page) HandleUpload(ctx context.Context, f File) error {
	p.update(func(s *State) {
		s.IsUploading = true
		s.Error = ""
	})

	items, err := p.process(ctx, f)
	if err != nil {
		log.WithError(err).WithField("file", f.Name).Error("Error processing file")
		p.update(func(s *State) {
			s.Error = ErrorMessage
			s.IsUploading = false
		})
		return err
	}

	p.update(func(s *State) {
		s.MenuItems = items
		s.IsUploading = false
	})
	return nil
}

func (p *Page) process(ctx context.Context, f File) ([]menu.Item, error) {
	resp, err := p.http.R().
		SetContext(ctx).
		SetMultipartField("file", f.Name, f.MIMEType, f.Reader()).
		Post("/api/process")
	if err != nil {
		return nil, fmt.Errorf("upload %s: %w", f.Name, err)
	}

	if !resp.IsSuccess() {
		var body struct {
			Error string `json:"error"`
		}
		_ = json.Unmarshal(resp.Body(), &body)
		return nil, fmt.Errorf("failed to process file: status %d: %s", resp.StatusCode(), body.Error)
	}

	var items []menu.Item
	if err := json.Unmarshal(resp.Body(), &items); err != nil {
		return nil, fmt.Errorf("decode items: %w", err)
	}

	if items == nil {
		items = []menu.Item{}
	}
	return items, nil
}

// Copy writes the current items as indented JSON to the clipboard and raises
// the copied flag. A pending reset from an earlier click is cancelled first.
func (p *Page) Copy() error {
	if p.clipboard == nil {
		return fmt.Errorf("copy: %w", ErrNoClipboard)
	}

	p.mu.Lock()
	items := p.state.MenuItems
	p.mu.Unlock()

	text, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("encode items: %w", err)
	}

	if err := p.clipboard.WriteText(string(text)); err != nil {
		return fmt.Errorf("write clipboard: %w", err)
	}

	p.mu.Lock()
	if p.copyReset != nil {
		p.copyReset.Stop()
	}
	p.state.Copied = true

	var timer *time.Timer
	timer = time.AfterFunc(p.delay, func() {
		p.mu.Lock()
		if p.copyReset != timer {
			// superseded by a later click
			p.mu.Unlock()
			return
		}
		p.copyReset = nil
		p.state.Copied = false
		snapshot, onChange := p.state, p.onChange
		p.mu.Unlock()

		if onChange != nil {
			onChange(snapshot)
		}
	})
	p.copyReset = timer
	snapshot, onChange := p.state, p.onChange
	p.mu.Unlock()

	if onChange != nil {
		onChange(snapshot)
	}
	return nil
}

// Close cancels a pending copied-flag reset.
func (p *Page) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.copyReset != nil {
		p.copyReset.Stop()
		p.copyReset = nil
	}
}

func (p *Page) update(fn func(*State)) {
	p.mu.Lock()
	fn(&p.state)
	snapshot := p.state
	onChange := p.onChange
	p.mu.Unlock()

	if onChange != nil {
		onChange(snapshot)
	}
}
