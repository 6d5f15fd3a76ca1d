package parser

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"time"

	"github.com/Masterminds/semver/v3"
	"gopkg.in/yaml.v3"

	mechErrors "github.com/NCAR/MechanismConfiguration-sub001/pkg/mechanism/errors"
	"github.com/NCAR/MechanismConfiguration-sub001/pkg/mechanism/schema"
	"github.com/NCAR/MechanismConfiguration-sub001/pkg/mechanism/types"
)

// Defaults.
const (
	DefaultMaxFileSize = 10 * 1024 * 1024 // 10MB

	// Files looked up when Parse is given a directory.
	DefaultConfigYAML = "config.yaml"
	DefaultConfigJSON = "config.json"
)

// Observer is notified of every completed parse.
type Observer interface {
	ObserveParse(result *Result, duration time.Duration)
}

// Parser turns configuration documents into mechanisms. A Parser holds
// only configuration, so one value may serve concurrent parses.
type Parser struct {
	maxFileSize  int64
	contextLines int
	logger       *slog.Logger
	observer     Observer
}

// NewParser creates a parser with default configuration.
func NewParser() *Parser {
	return &Parser{
		maxFileSize:  DefaultMaxFileSize,
		contextLines: mechErrors.DefaultContextLines,
		logger:       slog.Default(),
	}
}

// WithMaxFileSize sets the maximum file size limit.
func (p *Parser) WithMaxFileSize(size int64) *Parser {
	p.maxFileSize = size
	return p
}

// WithContextLines sets how many source lines surround each error. Zero
// disables source context.
func (p *Parser) WithContextLines(n int) *Parser {
	p.contextLines = n
	return p
}

// WithLogger sets the logger used for debug output.
func (p *Parser) WithLogger(logger *slog.Logger) *Parser {
	if logger != nil {
		p.logger = logger
	}
	return p
}

// WithObserver registers an observer notified after every parse.
func (p *Parser) WithObserver(o Observer) *Parser {
	p.observer = o
	return p
}

// Parse reads and parses the document at path. A directory resolves to the
// config.yaml or config.json it contains.
func (p *Parser) Parse(path string) *Result {
	start := time.Now()
	res := p.parseFile(path)
	p.finish(res, start)
	return res
}

// ParseBytes parses an in-memory document. source names the document in
// error locations and may be empty. Legacy camp-files cannot be resolved
// without a file and are reported.
func (p *Parser) ParseBytes(data []byte, source string) *Result {
	start := time.Now()
	res := p.parseBytes(data, source, "")
	p.finish(res, start)
	return res
}

// ParseNode parses an already decoded document, selecting the generation
// from its version field. The node is not modified.
func (p *Parser) ParseNode(root *yaml.Node) *Result {
	start := time.Now()
	res := p.run(root, "", "")
	p.finish(res, start)
	return res
}

// ParseGeneration parses root under one generation. Unlike ParseNode a
// versioned generation requires the version field, reporting
// MissingVersionField when it is absent and InvalidVersion when its major
// number belongs to another generation.
func (p *Parser) ParseGeneration(root *yaml.Node, gen Generation) *Result {
	start := time.Now()
	res := p.run(root, "", gen)
	p.finish(res, start)
	return res
}

// ResolvePath maps path to the document to read. An empty path, or a
// directory without a default config file, is an InvalidFilePath error; a
// missing path is FileNotFound.
func ResolvePath(path string) (string, *mechErrors.Error) {
	if path == "" {
		return "", mechErrors.New(mechErrors.InvalidFilePath, types.Location{}, "File path is empty")
	}
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", mechErrors.New(mechErrors.FileNotFound, types.Location{File: path},
				"File '%s' does not exist", path)
		}
		return "", mechErrors.New(mechErrors.InvalidFilePath, types.Location{File: path},
			"Failed to access file: %v", err)
	}
	if !info.IsDir() {
		return path, nil
	}
	for _, name := range []string{DefaultConfigYAML, DefaultConfigJSON} {
		candidate := filepath.Join(path, name)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", mechErrors.New(mechErrors.InvalidFilePath, types.Location{File: path},
		"Directory '%s' contains neither %s nor %s", path, DefaultConfigYAML, DefaultConfigJSON)
}

func (p *Parser) parseFile(path string) *Result {
	resolved, rerr := ResolvePath(path)
	if rerr != nil {
		res := newResult(path)
		res.Errors.Add(rerr)
		return res
	}

	info, err := os.Stat(resolved)
	if err == nil && info.Size() > p.maxFileSize {
		res := newResult(resolved)
		res.Errors.Addf(mechErrors.InvalidFilePath, types.Location{File: resolved},
			"File size %d exceeds maximum %d bytes", info.Size(), p.maxFileSize)
		return res
	}

	data, err := os.ReadFile(resolved)
	if err != nil {
		res := newResult(resolved)
		res.Errors.Addf(mechErrors.InvalidFilePath, types.Location{File: resolved},
			"Failed to read file: %v", err)
		return res
	}
	p.logger.Debug("parsing mechanism file", "path", resolved, "bytes", len(data))
	return p.parseBytes(data, resolved, filepath.Dir(resolved))
}

func (p *Parser) parseBytes(data []byte, source, baseDir string) *Result {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		res := newResult(source)
		res.Errors.Add(mechErrors.WithContext(syntaxError(err, source), data, p.contextLines))
		return res
	}

	res := p.run(&doc, baseDir, "")
	res.Source = source
	if source != "" {
		res.Errors.AttributeTo(source)
	}
	if p.contextLines > 0 {
		for _, e := range res.Errors.Errors {
			if e.Location.File == source {
				mechErrors.WithContext(e, data, p.contextLines)
			}
		}
	}
	return res
}

// run routes root to its generation and parses it.
func (p *Parser) run(root *yaml.Node, baseDir string, want Generation) *Result {
	res := newResult("")
	root = schema.Resolve(clone(root))
	if root == nil || root.Kind == 0 {
		res.Errors.AddError(mechErrors.EmptyObject, "Document is empty", types.Location{})
		return res
	}
	if n := Rewrite(root); n > 0 {
		p.logger.Debug("renamed legacy species name keys", "count", n)
	}

	gen, version, err := route(root, want)
	if err != nil {
		res.Errors.Add(err)
		return res
	}
	res.Generation = gen

	ps := newPass(gen, p.logger)
	ps.baseDir = baseDir
	if gen == V0 {
		ps.parseLegacy(root)
	} else {
		ps.parseVersioned(root, version)
	}
	res.Mechanism = ps.mech
	res.Errors.Merge(ps.errs)
	return res
}

func (p *Parser) finish(res *Result, start time.Time) {
	elapsed := time.Since(start)
	p.logger.Debug("parsed mechanism",
		"source", res.Source,
		"generation", res.Generation.String(),
		"errors", res.Errors.Count(),
		"duration", elapsed)
	if p.observer != nil {
		p.observer.ObserveParse(res, elapsed)
	}
}

// route selects the generation of root. An absent version selects the
// legacy generation unless want names a versioned one.
func route(root *yaml.Node, want Generation) (Generation, types.Version, *mechErrors.Error) {
	if want == V0 {
		return V0, types.Version{}, nil
	}
	vnode := schema.Lookup(root, keyVersion)
	if vnode == nil {
		if want == "" {
			return V0, types.Version{}, nil
		}
		return "", types.Version{}, mechErrors.New(mechErrors.MissingVersionField, schema.LocationOf(root),
			"Required key '%s' is missing", keyVersion)
	}

	raw, _ := schema.AsString(vnode)
	v, err := semver.NewVersion(raw)
	if err != nil {
		e := mechErrors.New(mechErrors.InvalidVersion, schema.LocationOf(vnode),
			"Invalid version '%s': %v", raw, err)
		e.Suggestion = "Use a semantic version such as '1.0.0'"
		return "", types.Version{}, e
	}
	version := types.Version{Major: int(v.Major()), Minor: int(v.Minor()), Patch: int(v.Patch())}

	var gen Generation
	switch version.Major {
	case 1:
		gen = V1
	case 2:
		gen = V2
	default:
		e := mechErrors.New(mechErrors.InvalidVersion, schema.LocationOf(vnode),
			"Unsupported version '%s'", raw)
		e.Suggestion = "Supported major versions are 1 and 2"
		return "", types.Version{}, e
	}
	if want != "" && gen != want {
		return "", types.Version{}, mechErrors.New(mechErrors.InvalidVersion, schema.LocationOf(vnode),
			"Version '%s' does not belong to generation %s", raw, want)
	}
	return gen, version, nil
}

var yamlLinePattern = regexp.MustCompile(`line (\d+)`)

// syntaxError converts a YAML decoding failure into an UnexpectedError,
// recovering the line number from the decoder message when present.
func syntaxError(err error, source string) *mechErrors.Error {
	loc := types.Location{File: source}
	if m := yamlLinePattern.FindStringSubmatch(err.Error()); m != nil {
		if line, convErr := strconv.Atoi(m[1]); convErr == nil {
			loc.Line = line
			loc.Column = 1
		}
	}
	return mechErrors.New(mechErrors.UnexpectedError, loc, "Failed to parse document: %v", err)
}
