package main

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/yungbote/lessongen/internal/app"
	"github.com/yungbote/lessongen/internal/config"
	"github.com/yungbote/lessongen/internal/modules/generation"
)

// generateCmd runs a single generation and prints the same JSON body the
// HTTP endpoint would return.
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Run one generation and print the result as JSON",
	Long: `Run one generation request against the configured model without starting a server.

Available subcommands:
  mcqs        - leveled Python questions (GET /generate)
  subtopics   - subtopic list for a topic (GET /subtopics)
  content     - lesson text for a subtopic (GET /content)
  topic-mcqs  - questions on an arbitrary topic (GET /topic-mcqs)`,
}

var (
	genLevel      string
	genWithTopics bool
	genTopic      string
	genPriority   float64
	genSubtopic   string
)

var generateMCQsCmd = &cobra.Command{
	Use:   "mcqs",
	Short: "Generate leveled multiple-choice questions",
	RunE: withUsecases(func(ctx context.Context, uc generation.Usecases, enc *json.Encoder) error {
		mcqs, err := uc.LeveledMCQs(ctx, generation.LeveledMCQInput{Level: genLevel, TagTopics: genWithTopics})
		if err != nil {
			return err
		}
		return enc.Encode(map[string]any{"mcqs": mcqs})
	}),
}

var generateSubtopicsCmd = &cobra.Command{
	Use:   "subtopics",
	Short: "Generate a subtopic list for a topic",
	RunE: withUsecases(func(ctx context.Context, uc generation.Usecases, enc *json.Encoder) error {
		subtopics, err := uc.Subtopics(ctx, generation.SubtopicsInput{
			Topic:    genTopic,
			Priority: strconv.FormatFloat(genPriority, 'f', -1, 64),
		})
		if err != nil {
			return err
		}
		return enc.Encode(map[string]any{"subtopics": subtopics})
	}),
}

var generateContentCmd = &cobra.Command{
	Use:   "content",
	Short: "Generate lesson text for a subtopic",
	RunE: withUsecases(func(ctx context.Context, uc generation.Usecases, enc *json.Encoder) error {
		content, err := uc.Content(ctx, generation.ContentInput{Subtopic: genSubtopic})
		if err != nil {
			return err
		}
		return enc.Encode(map[string]any{"content": content})
	}),
}

var generateTopicMCQsCmd = &cobra.Command{
	Use:   "topic-mcqs",
	Short: "Generate multiple-choice questions about a topic",
	RunE: withUsecases(func(ctx context.Context, uc generation.Usecases, enc *json.Encoder) error {
		mcqs, err := uc.TopicMCQs(ctx, generation.TopicMCQInput{Topic: genTopic})
		if err != nil {
			return err
		}
		return enc.Encode(map[string]any{"mcqs": mcqs})
	}),
}

func init() {
	generateMCQsCmd.Flags().StringVar(&genLevel, "level", "", "beginner, intermediate or advanced")
	generateMCQsCmd.Flags().BoolVar(&genWithTopics, "with-topics", false, "ask the model to tag each question with a topic")
	_ = generateMCQsCmd.MarkFlagRequired("level")

	generateSubtopicsCmd.Flags().StringVar(&genTopic, "topic", "", "topic to break down")
	generateSubtopicsCmd.Flags().Float64Var(&genPriority, "priority", 0.5, "audience priority in [0,1]; higher means more novice")
	_ = generateSubtopicsCmd.MarkFlagRequired("topic")

	generateContentCmd.Flags().StringVar(&genSubtopic, "subtopic", "", "subtopic to write a lesson on")
	_ = generateContentCmd.MarkFlagRequired("subtopic")

	generateTopicMCQsCmd.Flags().StringVar(&genTopic, "topic", "", "topic for the questions")
	_ = generateTopicMCQsCmd.MarkFlagRequired("topic")

	generateCmd.AddCommand(generateMCQsCmd, generateSubtopicsCmd, generateContentCmd, generateTopicMCQsCmd)
}

type usecaseRun func(ctx context.Context, uc generation.Usecases, enc *json.Encoder) error

func withUsecases(run usecaseRun) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		a, err := app.New(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		defer a.Close()

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return run(cmd.Context(), a.Usecases, enc)
	}
}
