package imgfetch

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"hash"
	"io"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	pb "gopkg.in/cheggaaa/pb.v1"
)

const (
	DefaultDir       = "Fetched_Images"
	DefaultUserAgent = "Ubuntu-Image-Fetcher/1.0 (Educational Purpose)"
	DefaultTimeout   = 10 * time.Second

	chunkSize     = 8192
	largeFileSize = 50 * 1024 * 1024
)

var (
	okMark   = color.New(color.FgGreen).Sprint("✓")
	warnMark = color.New(color.FgYellow).Sprint("⚠")
)

// Result describes the outcome of one download. When DuplicateOf is set the
// bytes matched an existing file and no new file was committed.
type Result struct {
	Filename    string
	Path        string
	Size        int64
	DuplicateOf string
}

// BatchResult pairs one batch URL with its outcome.
type BatchResult struct {
	URL    string
	Result *Result
	Err    error
}

// Fetcher downloads a single image per call, asking the Prompter before
// anything questionable happens. Use NewFetcher for sane defaults.
type Fetcher struct {
	Client    *http.Client
	Dir       string
	UserAgent string
	Prompter  Prompter
	Out       io.Writer
	Log       *logrus.Logger

	// CheckDuplicates streams through a temp file and skips committing
	// bytes already present in Dir under another name.
	CheckDuplicates bool
	// Quiet suppresses the progress bar (batch runs, tests).
	Quiet bool
}

func NewFetcher() *Fetcher {
	return &Fetcher{
		Client:    &http.Client{Timeout: DefaultTimeout},
		Dir:       DefaultDir,
		UserAgent: DefaultUserAgent,
		Prompter:  NewStdinPrompter(),
		Out:       os.Stdout,
		Log:       logrus.StandardLogger(),
	}
}

// Fetch downloads rawURL into f.Dir and reports what was written. A
// *CancelError comes back when the user declines one of the confirmation
// prompts; everything else is a real failure for Classify to describe.
func (f *Fetcher) Fetch(rawURL string) (*Result, error) {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return nil, ErrNoURL
	}

	if err := os.MkdirAll(f.Dir, 0755); err != nil {
		return nil, err
	}

	req, err := http.NewRequest(http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", f.UserAgent)

	f.Log.Debugf("GET %s", rawURL)
	res, err := f.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, &StatusError{Code: res.StatusCode, Status: res.Status}
	}

	for _, line := range HeaderReport(res.Header) {
		f.Log.Debug(line)
	}

	contentType := res.Header.Get("Content-Type")
	declaredSize := res.ContentLength

	for _, warning := range SafetyWarnings(rawURL, contentType, declaredSize) {
		fmt.Fprintf(f.Out, "%s %s\n", warnMark, warning)
	}

	if !strings.HasPrefix(contentType, "image/") {
		fmt.Fprintf(f.Out, "%s Warning: Content type is '%s', not an image\n", warnMark, contentType)
		if !f.Prompter.Confirm("Continue anyway?") {
			return nil, &CancelError{Message: "Operation cancelled. Respect for data types maintained."}
		}
	}

	filename := FilenameFromURL(rawURL, contentType)
	filePath := filepath.Join(f.Dir, filename)

	if _, err := os.Stat(filePath); err == nil {
		fmt.Fprintf(f.Out, "%s File %s already exists\n", warnMark, filename)
		if !f.Prompter.Confirm("Overwrite?") {
			filename, filePath = nextFreeName(f.Dir, filename)
			fmt.Fprintf(f.Out, "Saving as %s instead\n", filename)
		}
	}

	if declaredSize > largeFileSize {
		fmt.Fprintf(f.Out, "%s Large file detected: %.1fMB\n", warnMark, float64(declaredSize)/(1024*1024))
		if !f.Prompter.Confirm("Continue download?") {
			return nil, &CancelError{Message: "Download cancelled. Bandwidth conservation practiced."}
		}
	}

	written, dupOf, err := f.save(res.Body, filePath, declaredSize)
	if err != nil {
		return nil, err
	}
	if dupOf != "" {
		fmt.Fprintf(f.Out, "%s Identical content already saved as %s, skipping\n", warnMark, dupOf)
		return &Result{Filename: filename, Size: written, DuplicateOf: dupOf}, nil
	}

	info, err := os.Stat(filePath)
	if err != nil {
		return nil, err
	}
	actualSize := info.Size()

	fmt.Fprintf(f.Out, "%s Successfully fetched: %s\n", okMark, filename)
	fmt.Fprintf(f.Out, "%s Image saved to %s\n", okMark, filePath)
	fmt.Fprintf(f.Out, "%s File size: %.1f KB\n", okMark, float64(actualSize)/1024)

	if declaredSize > 0 && actualSize != declaredSize {
		fmt.Fprintf(f.Out, "%s Warning: File size mismatch - download may be incomplete\n", warnMark)
	}

	return &Result{Filename: filename, Path: filePath, Size: actualSize}, nil
}

// FetchAll downloads every URL in order. A failing URL is recorded in its
// BatchResult and the batch moves on to the next one.
func (f *Fetcher) FetchAll(urls []string) []BatchResult {
	results := make([]BatchResult, 0, len(urls))
	for i, rawURL := range urls {
		fmt.Fprintf(f.Out, "\n[%d/%d] Processing: %s\n", i+1, len(urls), rawURL)
		res, err := f.Fetch(rawURL)
		results = append(results, BatchResult{URL: rawURL, Result: res, Err: err})
	}
	return results
}

// save streams body to filePath in fixed-size chunks. With CheckDuplicates
// on, the bytes land in a temp file while a SHA-256 digest accumulates; the
// temp file is renamed into place only if no existing file in the directory
// already holds the same content.
func (f *Fetcher) save(body io.Reader, filePath string, declaredSize int64) (int64, string, error) {
	target := filePath
	if f.CheckDuplicates {
		target = filePath + ".part"
	}

	out, err := os.Create(target)
	if err != nil {
		return 0, "", err
	}

	dst := io.Writer(out)
	var digest hash.Hash
	if f.CheckDuplicates {
		digest = sha256.New()
		dst = io.MultiWriter(out, digest)
	}

	var bar *pb.ProgressBar
	if !f.Quiet {
		bar = pb.New64(declaredSize).SetUnits(pb.U_BYTES)
		bar.Output = f.Out
		bar.ShowSpeed = true
		if declaredSize <= 0 {
			bar.ShowPercent = false
			bar.ShowBar = false
		}
		bar.Start()
	}

	written, err := copyChunks(dst, body, bar)
	if bar != nil {
		bar.Finish()
	}
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(target)
		return 0, "", err
	}

	if f.CheckDuplicates {
		sum := hex.EncodeToString(digest.Sum(nil))
		dup, err := FindDuplicate(f.Dir, sum, filepath.Base(target))
		if err == nil && dup != "" {
			os.Remove(target)
			return written, dup, nil
		}
		if err := os.Rename(target, filePath); err != nil {
			os.Remove(target)
			return 0, "", err
		}
	}
	return written, "", nil
}

// copyChunks is the fixed-size copy loop; empty reads are skipped and each
// write is reported to the bar as it lands on disk.
func copyChunks(dst io.Writer, src io.Reader, bar *pb.ProgressBar) (int64, error) {
	buf := make([]byte, chunkSize)
	var written int64
	for {
		nr, er := src.Read(buf)
		if nr > 0 {
			nw, ew := dst.Write(buf[:nr])
			written += int64(nw)
			if bar != nil {
				bar.Add(nw)
			}
			if ew != nil {
				return written, ew
			}
			if nr != nw {
				return written, io.ErrShortWrite
			}
		}
		if er != nil {
			if er == io.EOF {
				return written, nil
			}
			return written, er
		}
	}
}

// nextFreeName appends _1, _2, ... before the extension until the name is
// free in dir.
func nextFreeName(dir, filename string) (string, string) {
	ext := path.Ext(filename)
	base := strings.TrimSuffix(filename, ext)
	for counter := 1; ; counter++ {
		name := fmt.Sprintf("%s_%d%s", base, counter, ext)
		candidate := filepath.Join(dir, name)
		if _, err := os.Stat(candidate); os.IsNotExist(err) {
			return name, candidate
		}
	}
}
