package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dkoosis/plprompt/pkg/prompt"
	"github.com/dkoosis/plprompt/pkg/token"
)

type renderOptions struct {
	template string
	right    bool
	file     string
	width    bool
}

func (a *app) renderCmd() *cobra.Command {
	var opts renderOptions
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a token stream as a prompt",
		Long: `Render reads a token stream from --file or stdin and prints the prompt.

Without --template the stream is drawn as the primary prompt, or as the
right prompt with --right. With --template the id is compared against the
configured prompt and right_prompt templates; any other id is printed
without styling.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runRender(opts)
		},
	}
	f := cmd.Flags()
	f.StringVarP(&opts.template, "template", "t", "", "template id that produced the stream")
	f.BoolVarP(&opts.right, "right", "r", false, "render as the right prompt")
	f.StringVarP(&opts.file, "file", "f", "", "read tokens from this file instead of stdin")
	f.BoolVar(&opts.width, "width", false, "report the visible width on stderr")
	cmd.MarkFlagsMutuallyExclusive("template", "right")
	return cmd
}

func (a *app) runRender(opts renderOptions) error {
	tokens, err := a.readTokens(opts.file)
	if err != nil {
		return err
	}

	r := prompt.NewRenderer(a.resolved.RendererOptions())
	a.logger.Debug("rendering",
		zap.Int("tokens", len(tokens)),
		zap.String("glyph_mode", r.Mode().Name),
		zap.String("template", opts.template),
		zap.Bool("right", opts.right),
	)

	var out string
	if opts.template != "" {
		a.logger.Debug("template classified", zap.String("kind", string(a.resolved.Templates.Classify(opts.template))))
		out, err = r.Render(opts.template, tokens)
		if err != nil {
			return fmt.Errorf("render: %w", err)
		}
	} else {
		if err := token.Validate(tokens); err != nil {
			return fmt.Errorf("render: %w", err)
		}
		out = r.RenderLines(opts.right, tokens)
	}

	if _, err := io.WriteString(a.stdout, out); err != nil {
		return fmt.Errorf("write prompt: %w", err)
	}
	if opts.width {
		fmt.Fprintf(a.stderr, "width: %d\n", prompt.VisibleWidth(out, r.Dialect()))
	}
	return nil
}

func (a *app) readTokens(file string) ([]token.Token, error) {
	if file != "" {
		tokens, err := token.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("read tokens: %w", err)
		}
		return tokens, nil
	}
	tokens, err := token.Decode(a.stdin)
	if err != nil {
		return nil, fmt.Errorf("read tokens from stdin: %w", err)
	}
	return tokens, nil
}
