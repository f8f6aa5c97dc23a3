package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/clipsmith/clipsmith/internal/config"
	"github.com/clipsmith/clipsmith/internal/segments"
	"github.com/clipsmith/clipsmith/internal/services/provider"
	"github.com/clipsmith/clipsmith/internal/utils"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	configFilePath   string
	transcriptPath   string
	outputDirPath    string
	providerName     string
	modelOverride    string
	segmentCount     int
	segmentLength    int
	mediaDurationSec float64
	promptFilePath   string
	projectID        string
	requestTimeoutMs int
)

// segmentsOutput defines the structure of the segments YAML file
type segmentsOutput struct {
	SourceVideo string         `yaml:"sourceVideo"`
	Segments    []segmentEntry `yaml:"segments"`
}

type segmentEntry struct {
	Start     string `yaml:"start"`
	End       string `yaml:"end"`
	Summary   string `yaml:"summary"`
	Excerpt   string `yaml:"excerpt"`
	Reasoning string `yaml:"reasoning"`
	Status    string `yaml:"status"`
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate clip segments from a transcript",
	Long: `Send a transcript to an AI provider and write the validated clip
segments to a YAML file. Provider credentials are read from the environment
(or a .env file).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := buildConfig()
		if err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		transcript, err := os.ReadFile(cfg.Input)
		if err != nil {
			return fmt.Errorf("failed to read transcript file: %w", err)
		}

		template := ""
		if cfg.PromptFilePath != "" {
			promptData, err := config.LoadPromptTemplate(cfg.PromptFilePath)
			if err != nil {
				return fmt.Errorf("failed to load prompt template: %w", err)
			}
			template = promptData.Prompt
			utils.LogInfo("Using prompt template: %s", cfg.PromptFilePath)
		}

		id := provider.ID(cfg.Provider)
		settings := segments.GenerationSettings{
			ProjectID:        cfg.ProjectID,
			SegmentCount:     cfg.SegmentCount,
			MaxSegmentLength: time.Duration(cfg.SegmentLength) * time.Second,
			PromptTemplate:   template,
			Provider:         id,
			Credentials:      provider.CredentialsFromEnv(id),
			Model:            cfg.Model,
		}
		mediaDuration := time.Duration(cfg.MediaDuration * float64(time.Second))

		ctx, cancel := context.WithTimeout(cmd.Context(), time.Duration(requestTimeoutMs)*time.Millisecond)
		defer cancel()

		generator := segments.NewGenerator(provider.NewRegistry())
		result, err := generator.Generate(ctx, settings, string(transcript), mediaDuration)
		if err != nil {
			return fmt.Errorf("generation failed: %s", result.Error)
		}

		outputFilePath := filepath.Join(cfg.Output, "segments.yaml")
		if err := writeSegmentsFile(outputFilePath, cfg.Input, result.Segments); err != nil {
			return err
		}

		utils.LogSuccess("Wrote %d segments to %s", len(result.Segments), outputFilePath)
		return nil
	},
}

// buildConfig merges the optional config file with flag overrides
func buildConfig() (*config.GenerationConfig, error) {
	cfg := &config.GenerationConfig{}
	if configFilePath != "" {
		loaded, err := config.LoadGenerationConfig(configFilePath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if transcriptPath != "" {
		cfg.Input = transcriptPath
	}
	if outputDirPath != "" {
		cfg.Output = outputDirPath
	}
	if providerName != "" {
		cfg.Provider = providerName
	}
	if modelOverride != "" {
		cfg.Model = modelOverride
	}
	if segmentCount > 0 {
		cfg.SegmentCount = segmentCount
	}
	if segmentLength > 0 {
		cfg.SegmentLength = segmentLength
	}
	if mediaDurationSec > 0 {
		cfg.MediaDuration = mediaDurationSec
	}
	if promptFilePath != "" {
		cfg.PromptFilePath = promptFilePath
	}
	if projectID != "" {
		cfg.ProjectID = projectID
	}

	cfg.ApplyDefaults()
	return cfg, nil
}

func writeSegmentsFile(path, source string, segs []segments.Segment) error {
	output := segmentsOutput{
		SourceVideo: source,
		Segments:    make([]segmentEntry, 0, len(segs)),
	}
	for _, s := range segs {
		output.Segments = append(output.Segments, segmentEntry{
			Start:     segments.FormatClockTime(s.StartOffset),
			End:       segments.FormatClockTime(s.EndOffset),
			Summary:   s.Summary,
			Excerpt:   s.TranscriptExcerpt,
			Reasoning: s.Reasoning,
			Status:    string(s.Status),
		})
	}

	yamlData, err := yaml.Marshal(output)
	if err != nil {
		return fmt.Errorf("failed to generate YAML: %w", err)
	}
	if err := os.WriteFile(path, yamlData, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}

func init() {
	generateCmd.Flags().StringVarP(&configFilePath, "config", "c", "", "Path to a generation config YAML file")
	generateCmd.Flags().StringVarP(&transcriptPath, "input", "i", "", "Path to the transcript file (.txt or .srt)")
	generateCmd.Flags().StringVarP(&outputDirPath, "output", "o", "", "Path to the output directory")
	generateCmd.Flags().StringVarP(&providerName, "provider", "p", "", "AI provider: local, openai, anthropic, azure-openai, google-gemini")
	generateCmd.Flags().StringVarP(&modelOverride, "model", "m", "", "Model override for the provider")
	generateCmd.Flags().IntVarP(&segmentCount, "count", "n", 0, "Number of segments to request (default 5)")
	generateCmd.Flags().IntVar(&segmentLength, "length", 0, "Maximum segment length in seconds (default 60)")
	generateCmd.Flags().Float64VarP(&mediaDurationSec, "duration", "d", 0, "Recording length in seconds (default 300)")
	generateCmd.Flags().StringVar(&promptFilePath, "prompt", "", "Path to a custom prompt YAML file")
	generateCmd.Flags().StringVar(&projectID, "project", "", "Project id carried onto generated segments")
	generateCmd.Flags().IntVar(&requestTimeoutMs, "timeout", 120000, "Request timeout in milliseconds")
	rootCmd.AddCommand(generateCmd)
}
