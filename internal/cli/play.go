package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"quiz-widget/internal/app"
	"quiz-widget/internal/widget"
)

// NewPlayCmd runs a quiz session in the terminal.
func NewPlayCmd(configPath *string) *cobra.Command {
	var setID, setsFile string
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play a question set in the terminal",
		Long: "Play a question set in the terminal.\n\n" +
			"Type an option number to select it, press enter (or 's') to submit, 'q' to quit.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(cmd.Context(), *configPath, setsFile, setID, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVar(&setID, "set", "", "question set to play (defaults to quiz.default_set)")
	cmd.Flags().StringVar(&setsFile, "file", "", "question sets YAML to play from instead of the configured store")
	return cmd
}

func runPlay(ctx context.Context, configPath, setsFile, setID string, in io.Reader, out io.Writer) error {
	d, err := buildDeps(ctx, configPath, setsFile)
	if err != nil {
		return err
	}
	defer d.Close()
	if setID == "" {
		setID = d.cfg.Quiz.DefaultSet
	}
	return play(ctx, d.service, d.logger, setID, in, out)
}

// play drives one session from line-based input, re-rendering after every change.
func play(ctx context.Context, service *app.QuizService, log *zap.Logger, setID string, in io.Reader, out io.Writer) error {
	if log == nil {
		log = zap.NewNop()
	}
	session, view, err := service.Start(ctx, setID)
	if err != nil {
		return err
	}
	defer service.End(ctx, session.ID())

	if err := widget.Render(out, view); err != nil {
		return err
	}

	scanner := bufio.NewScanner(in)
	for view.Mode == widget.ModeQuestion {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			break
		}
		input := strings.TrimSpace(scanner.Text())

		switch {
		case input == "q":
			log.Debug("quiz abandoned", zap.String("session_id", session.ID()))
			return nil
		case input == "" || input == "s":
			view, err = service.Submit(ctx, session.ID())
		default:
			n, convErr := strconv.Atoi(input)
			if convErr != nil || n < 1 || n > len(view.Options) {
				fmt.Fprintf(out, "choose 1-%d, enter to submit, q to quit\n", len(view.Options))
				continue
			}
			view, err = service.Select(ctx, session.ID(), view.Options[n-1].Text)
		}
		if err != nil {
			return err
		}
		if err := widget.Render(out, view); err != nil {
			return err
		}
	}
	return scanner.Err()
}
