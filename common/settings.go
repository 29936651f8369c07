package common

import (
	"os"
	"path/filepath"

	"github.com/kaizenlab/fishbone-assistant/logger"
	"gopkg.in/yaml.v3"
)

// Diagram holds the fishbone-generation settings.
type Diagram struct {
	// CategoryHint steers the major cause categories, e.g. manufacturing
	// process steps instead of the generic 6M viewpoints.
	CategoryHint string `yaml:"category_hint"`
}

// Reply holds the email-drafting settings.
type Reply struct {
	// SenderIdentity is interpolated into the drafting prompt, e.g.
	// "Taro Yamada of Example Corp".
	SenderIdentity string `yaml:"sender_identity"`
}

type Settings struct {
	Model       string  `yaml:"model"`
	Temperature float64 `yaml:"temperature"`
	MaxTokens   int     `yaml:"max_tokens"`
	APITimeout  int     `yaml:"api_timeout"`
	Language    string  `yaml:"language"`
	Tone        string  `yaml:"tone_instructions"`
	Diagram     Diagram `yaml:"diagram"`
	Reply       Reply   `yaml:"reply"`
}

func WithDefaultSettings() Settings {
	return Settings{
		Model:       "gemini-2.0-flash",
		Temperature: 0.3,
		MaxTokens:   2048,
		APITimeout:  60,
		Language:    "en-US",
	}
}

func WithYamlFile() Settings {
	settings := WithDefaultSettings()

	var filePath string
	filenames := []string{"fishbone.yml", "fishbone.yaml"}

	for _, name := range filenames {
		if _, err := os.Stat(name); err == nil {
			filePath = name
			break
		}
	}

	if filePath == "" {
		filepath.Walk(".", func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if filePath != "" {
				return filepath.SkipDir
			}
			for _, name := range filenames {
				if !info.IsDir() && info.Name() == name {
					filePath = path
					return filepath.SkipDir
				}
			}
			return nil
		})
	}

	if filePath != "" {
		data, err := os.ReadFile(filePath)
		if err == nil {
			if err := yaml.Unmarshal(data, &settings); err != nil {
				logger.Infof("Failed to parse YAML file %s: %v", filePath, err)
			} else {
				logger.Infof("Using settings from YAML file: %s", filePath)
			}
		}
	} else {
		logger.Infof("No YAML file found in the current directory or subdirectories. Using default settings.")
	}
	return settings
}
