package edition

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"time"

	"github.com/Masterminds/semver/v3"
	"go.yaml.in/yaml/v3"

	"github.com/groundwork-labs/groundwork/internal/engine"
)

//go:embed editions
var editionsFS embed.FS

const (
	editionsDir  = "editions"
	manifestName = "edition.yaml"
)

// Standard placeholder names every edition template may reference.
const (
	VarProjectName        = "PROJECT_NAME"
	VarProjectDescription = "PROJECT_DESCRIPTION"
	VarDate               = "DATE"
	VarEdition            = "EDITION"
	VarEditionVersion     = "EDITION_VERSION"
)

// Manifest is the parsed form of an edition.yaml file.
type Manifest struct {
	Name        string          `yaml:"name"`
	Version     string          `yaml:"version"`
	Description string          `yaml:"description"`
	Entries     []ManifestEntry `yaml:"entries"`
}

// ManifestEntry maps one output path to a template source and conflict policy.
type ManifestEntry struct {
	Path   string `yaml:"path"`
	Source string `yaml:"source"`
	Policy string `yaml:"policy"`
}

// Edition is a loaded, validated scaffold edition.
type Edition struct {
	Name        string
	Version     *semver.Version
	Description string

	registry *engine.Registry
}

// Registry returns the edition's template registry.
func (e *Edition) Registry() *engine.Registry { return e.registry }

// Bindings builds the standard variable bindings for this edition.
func (e *Edition) Bindings(projectName, projectDescription string, now time.Time) map[string]string {
	return map[string]string{
		VarProjectName:        projectName,
		VarProjectDescription: projectDescription,
		VarDate:               now.Format("2006-01-02"),
		VarEdition:            e.Name,
		VarEditionVersion:     e.Version.String(),
	}
}

// Names returns the embedded edition names in lexical order.
func Names() ([]string, error) {
	dirs, err := fs.ReadDir(editionsFS, editionsDir)
	if err != nil {
		return nil, fmt.Errorf("reading embedded editions: %w", err)
	}
	var names []string
	for _, d := range dirs {
		if d.IsDir() {
			names = append(names, d.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

// Load parses, validates, and assembles one embedded edition by name.
func Load(name string) (*Edition, error) {
	dir := path.Join(editionsDir, name)
	data, err := fs.ReadFile(editionsFS, path.Join(dir, manifestName))
	if err != nil {
		return nil, fmt.Errorf("unknown edition %q: %w", name, err)
	}

	valResult, err := Validate(data)
	if err != nil {
		return nil, fmt.Errorf("validating edition %q: %w", name, err)
	}
	if !valResult.Valid {
		var msgs []string
		for _, issue := range valResult.Issues {
			msg := issue.Message
			if issue.Path != "" {
				msg = issue.Path + ": " + msg
			}
			msgs = append(msgs, msg)
		}
		return nil, fmt.Errorf("edition %q manifest is invalid:\n  %s", name, strings.Join(msgs, "\n  "))
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing edition %q manifest: %w", name, err)
	}
	if m.Name != name {
		return nil, fmt.Errorf("edition %q manifest declares name %q", name, m.Name)
	}

	version, err := semver.NewVersion(m.Version)
	if err != nil {
		return nil, fmt.Errorf("parsing edition %q version %q: %w", name, m.Version, err)
	}

	reg := engine.NewRegistry()
	for _, entry := range m.Entries {
		body, err := fs.ReadFile(editionsFS, path.Join(dir, entry.Source))
		if err != nil {
			return nil, fmt.Errorf("edition %q: reading template %s: %w", name, entry.Source, err)
		}
		policy, err := parsePolicy(entry.Policy)
		if err != nil {
			return nil, fmt.Errorf("edition %q entry %s: %w", name, entry.Path, err)
		}
		reg.Register(engine.Entry{
			Path:   entry.Path,
			Body:   string(body),
			Policy: policy,
		})
	}

	return &Edition{
		Name:        m.Name,
		Version:     version,
		Description: m.Description,
		registry:    reg,
	}, nil
}

// List loads every embedded edition, sorted by version ascending.
func List() ([]*Edition, error) {
	names, err := Names()
	if err != nil {
		return nil, err
	}
	editions := make([]*Edition, 0, len(names))
	for _, name := range names {
		e, err := Load(name)
		if err != nil {
			return nil, err
		}
		editions = append(editions, e)
	}
	sort.Slice(editions, func(i, j int) bool {
		return editions[i].Version.LessThan(editions[j].Version)
	})
	return editions, nil
}

// Latest returns the edition with the highest version.
func Latest() (*Edition, error) {
	editions, err := List()
	if err != nil {
		return nil, err
	}
	if len(editions) == 0 {
		return nil, fmt.Errorf("no editions embedded")
	}
	return editions[len(editions)-1], nil
}

func parsePolicy(s string) (engine.Policy, error) {
	switch s {
	case "overwrite":
		return engine.OverwriteAlways, nil
	case "create":
		return engine.CreateIfAbsent, nil
	case "skip":
		return engine.SkipIfPresent, nil
	default:
		return 0, fmt.Errorf("unknown policy %q", s)
	}
}
