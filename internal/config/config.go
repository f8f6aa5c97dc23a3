// Package config loads and validates the file-backed settings for a
// generation run.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// GenerationConfig holds the configuration for one generation run
type GenerationConfig struct {
	Input          string  `yaml:"input"`          // Path to the transcript file
	Output         string  `yaml:"output"`         // Path to the output directory
	Provider       string  `yaml:"provider"`       // Provider id (default "openai")
	Model          string  `yaml:"model"`          // Model override for the provider
	SegmentCount   int     `yaml:"segmentCount"`   // Number of segments to request (default 5)
	SegmentLength  int     `yaml:"segmentLength"`  // Maximum segment length in seconds (default 60)
	MediaDuration  float64 `yaml:"mediaDuration"`  // Recording length in seconds (default 300)
	PromptFilePath string  `yaml:"promptFilePath"` // Path to a custom prompt YAML file
	ProjectID      string  `yaml:"projectId"`      // Owning project reference carried onto segments
}

// PromptData represents the structure of a YAML prompt template
type PromptData struct {
	Title       string `yaml:"title"`
	Role        string `yaml:"role"`
	Prompt      string `yaml:"prompt"`
	Description string `yaml:"description"`
}

// LoadGenerationConfig reads a generation config from a YAML file
func LoadGenerationConfig(path string) (*GenerationConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg GenerationConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &cfg, nil
}

// ApplyDefaults fills in unset configuration fields
func (c *GenerationConfig) ApplyDefaults() {
	if c.Provider == "" {
		c.Provider = "openai"
	}
	if c.SegmentCount == 0 {
		c.SegmentCount = 5
	}
	if c.SegmentLength == 0 {
		c.SegmentLength = 60
	}
}

// Validate performs comprehensive validation of the generation config
func (c *GenerationConfig) Validate() error {
	if c.Input == "" {
		return fmt.Errorf("input transcript path is required")
	}
	fileInfo, err := os.Stat(c.Input)
	if err != nil {
		return fmt.Errorf("input path does not exist: %w", err)
	}
	if fileInfo.IsDir() {
		return fmt.Errorf("input must be a file, not a directory: %s", c.Input)
	}
	if ext := strings.ToLower(filepath.Ext(c.Input)); ext != ".txt" && ext != ".srt" {
		return fmt.Errorf("unsupported transcript extension %s (expected .txt or .srt)", ext)
	}

	if c.Output == "" {
		return fmt.Errorf("output directory is required")
	}
	if info, err := os.Stat(c.Output); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to access output path: %w", err)
		}
		if err := os.MkdirAll(c.Output, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	} else if !info.IsDir() {
		return fmt.Errorf("output must be a directory, not a file: %s", c.Output)
	}

	if c.SegmentCount < 0 {
		return fmt.Errorf("segmentCount cannot be negative")
	}
	if c.SegmentLength < 0 {
		return fmt.Errorf("segmentLength cannot be negative")
	}
	if c.MediaDuration < 0 {
		return fmt.Errorf("mediaDuration cannot be negative")
	}

	if c.PromptFilePath != "" {
		if _, err := os.Stat(c.PromptFilePath); os.IsNotExist(err) {
			return fmt.Errorf("prompt template file %s does not exist", c.PromptFilePath)
		}
	}

	return nil
}

// LoadPromptTemplate loads a prompt template from a YAML file
func LoadPromptTemplate(filePath string) (*PromptData, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read prompt template: %w", err)
	}

	var promptData PromptData
	if err := yaml.Unmarshal(data, &promptData); err != nil {
		return nil, fmt.Errorf("failed to parse prompt template: %w", err)
	}

	return &promptData, nil
}
