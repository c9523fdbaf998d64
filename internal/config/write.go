package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rileyhilliard/rcmd/internal/errors"
	"gopkg.in/yaml.v3"
)

const fileHeader = `# rcmd configuration
# Values under 'params' pre-fill the command builder.
# Run 'rcmd list' to see the commands they produce.
`

// fileConfig mirrors Config with human-readable durations for the written file.
type fileConfig struct {
	Version   int             `yaml:"version"`
	Params    ParamsConfig    `yaml:"params"`
	Rclone    RcloneConfig    `yaml:"rclone"`
	Copy      fileCopy        `yaml:"copy"`
	Clipboard ClipboardConfig `yaml:"clipboard"`
	Output    OutputConfig    `yaml:"output"`
}

type fileCopy struct {
	CopiedFor string `yaml:"copied_for"`
	NotifyFor string `yaml:"notify_for"`
}

// Marshal renders cfg as the YAML written by 'rcmd init', header included.
func Marshal(cfg *Config) ([]byte, error) {
	fc := fileConfig{
		Version:   cfg.Version,
		Params:    cfg.Params,
		Rclone:    cfg.Rclone,
		Copy:      fileCopy{CopiedFor: cfg.Copy.CopiedFor.String(), NotifyFor: cfg.Copy.NotifyFor.String()},
		Clipboard: cfg.Clipboard,
		Output:    cfg.Output,
	}

	var buf strings.Builder
	buf.WriteString(fileHeader)
	buf.WriteString("\n")
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(fc); err != nil {
		return nil, errors.Wrap(err, "Failed to encode config")
	}
	if err := encoder.Close(); err != nil {
		return nil, errors.Wrap(err, "Failed to encode config")
	}
	return []byte(buf.String()), nil
}

// Write saves cfg to path. An existing file is only replaced when force is set.
func Write(path string, cfg *Config, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return errors.New(errors.ErrConfig,
			path+" already exists",
			"Use --force to overwrite it")
	}

	data, err := Marshal(cfg)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Cannot create config directory "+dir,
				"Check directory permissions")
		}
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to write "+path,
			"Check file permissions")
	}
	return nil
}

// SetValue updates one dotted key (e.g. "params.remote") in an existing config
// file. Comments and key order are preserved; missing mappings are created.
func SetValue(configPath, key, value string) error {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to read config file",
			"Run 'rcmd init' to create one")
	}

	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to parse config file",
			"Check the YAML syntax in "+configPath)
	}

	if root.Kind == 0 {
		root = yaml.Node{Kind: yaml.DocumentNode, Content: []*yaml.Node{{Kind: yaml.MappingNode, Tag: "!!map"}}}
	}
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 || root.Content[0].Kind != yaml.MappingNode {
		return errors.New(errors.ErrConfig,
			"Expected a mapping at the top of "+configPath,
			"Recreate the file with 'rcmd init --force'")
	}

	node := root.Content[0]
	parts := strings.Split(key, ".")
	for _, part := range parts[:len(parts)-1] {
		child := findMapValue(node, part)
		if child == nil {
			child = &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
			node.Content = append(node.Content, scalar(part), child)
		}
		if child.Kind != yaml.MappingNode {
			return errors.New(errors.ErrConfig,
				fmt.Sprintf("'%s' in %s is not a mapping", part, configPath),
				"Fix the file by hand or recreate it with 'rcmd init --force'")
		}
		node = child
	}

	leaf := parts[len(parts)-1]
	if existing := findMapValue(node, leaf); existing != nil {
		existing.Kind = yaml.ScalarNode
		existing.Tag = "!!str"
		existing.Value = value
		existing.Style = 0
		existing.Content = nil
	} else {
		node.Content = append(node.Content, scalar(leaf), scalar(value))
	}

	var buf strings.Builder
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(&root); err != nil {
		return errors.Wrap(err, "Failed to encode config")
	}
	encoder.Close()

	if err := os.WriteFile(configPath, []byte(buf.String()), 0644); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to write "+configPath,
			"Check file permissions")
	}
	return nil
}

func scalar(v string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v}
}

// findMapValue finds a value in a mapping node by key name.
func findMapValue(node *yaml.Node, key string) *yaml.Node {
	if node.Kind != yaml.MappingNode {
		return nil
	}

	for i := 0; i < len(node.Content)-1; i += 2 {
		keyNode := node.Content[i]
		if keyNode.Kind == yaml.ScalarNode && keyNode.Value == key {
			return node.Content[i+1]
		}
	}

	return nil
}
