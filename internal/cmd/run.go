package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arbiterhq/colloquy/internal/cli"
	"github.com/arbiterhq/colloquy/internal/config"
	"github.com/arbiterhq/colloquy/internal/debate"
	"github.com/arbiterhq/colloquy/internal/diagram"
	"github.com/arbiterhq/colloquy/internal/event"
	"github.com/arbiterhq/colloquy/internal/llm"
	"github.com/arbiterhq/colloquy/internal/logging"
)

// runDebate is the interactive entry point: prompt for a topic, run the
// full debate loop, stream each turn, and print the final judgment.
func runDebate(cmd *cobra.Command) error {
	config.LoadDotenv()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, err := logging.NewLogger(cfg.Logging.File, cfg.Logging.Level)
	if err != nil {
		return fmt.Errorf("open run log: %w", err)
	}
	defer logger.Close()

	// Missing credential is fatal-at-startup: log it, tell the operator,
	// and return without attempting any debate turns.
	apiKey, ok := cfg.APIKey()
	if !ok {
		logger.Error("FATAL: " + cfg.LLM.APIKeyEnv + " environment variable not set")
		fmt.Fprintln(os.Stderr, cli.ErrorText.Render("FATAL: "+cfg.LLM.APIKeyEnv+" environment variable not set."))
		return nil
	}

	fmt.Println(cli.Banner.Render("--- Multi-Agent Debate System ---"))

	topic, err := resolveTopic(cmd)
	if err != nil {
		return err
	}
	logger.Info("debate topic", "topic", topic)

	// Best-effort side artifact; a failure here never blocks the debate.
	if err := diagram.Write(cfg.Diagram.File); err != nil {
		logger.Warn("could not generate state graph diagram", "error", err.Error())
		fmt.Println(cli.Muted.Render("warning: could not generate state graph diagram: " + err.Error()))
	} else {
		logger.Info("state graph diagram saved", "path", cfg.Diagram.File)
	}

	bus := event.NewBus()
	bus.Subscribe("turn.completed", func(e event.Event) {
		turn, ok := e.(event.TurnCompletedEvent)
		if !ok {
			return
		}
		fmt.Println(cli.TurnLine(turn.Round, turn.Speaker, turn.Text))
	})

	client := llm.NewOpenAIClient(apiKey, cfg.LLM.Model, cfg.LLM.Temperature,
		llm.WithBaseURL(cfg.LLM.BaseURL))

	orch := debate.NewOrchestrator(
		debate.NewEngine(client),
		debate.NewJudge(client),
		bus,
		logger,
	)

	fmt.Println("\nStarting debate between Scientist and Philosopher...")

	final, err := orch.Run(context.Background(), topic)
	if err != nil {
		fmt.Fprintln(os.Stderr, cli.ErrorText.Render(err.Error()))
		return err
	}

	fmt.Println("\n" + cli.Banner.Render("--- Debate Concluded ---") + "\n")
	fmt.Println(cli.VerdictBlock(final.Summary, final.Winner, final.Justification))
	fmt.Println(cli.Muted.Render("Full debate log saved to " + cfg.Logging.File))

	return nil
}

// resolveTopic uses the --topic flag when given, otherwise prompts on stdin.
func resolveTopic(cmd *cobra.Command) (string, error) {
	if topic, _ := cmd.Flags().GetString("topic"); strings.TrimSpace(topic) != "" {
		return strings.TrimSpace(topic), nil
	}

	fmt.Print("Enter the topic for the debate: ")
	reader := bufio.NewReader(cmd.InOrStdin())
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("read topic: %w", err)
	}
	return strings.TrimSpace(line), nil
}
