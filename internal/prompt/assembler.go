package prompt

import (
	"context"
	"fmt"
	"strings"

	"github.com/sandeepkv93/vaultos/internal/model"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	ConstitutionFile        = "PROJECT_CONSTITUTION_v2.0.md"
	ConstitutionPlaceholder = "[여기에 'PROJECT_CONSTITUTION_v2.0.md' 파일의 전체 내용을 붙여넣으십시오]"
)

// Assembler builds prompt documents from the constitution and a category
// template. Documents are fetched on every call.
type Assembler struct {
	source Source
	logger *zap.Logger
}

func NewAssembler(source Source, logger *zap.Logger) *Assembler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Assembler{source: source, logger: logger.Named("prompt")}
}

func (a *Assembler) Assemble(ctx context.Context, category string, input string) (string, error) {
	spec, known := model.LookupCategory(category)

	var (
		constitution, template string
		constErr               error
		g                      errgroup.Group
	)
	g.Go(func() error {
		var err error
		constitution, err = a.source.Fetch(ctx, ConstitutionFile)
		constErr = err
		return err
	})
	g.Go(func() error {
		var err error
		template, err = a.source.Fetch(ctx, spec.Template)
		return err
	})
	if err := g.Wait(); err != nil {
		// A missing constitution is reported ahead of a missing template.
		if constErr != nil {
			err = constErr
		}
		a.logger.Warn("prompt documents unavailable", zap.String("category", string(spec.Name)), zap.Error(err))
		return "", err
	}

	out := strings.Replace(template, ConstitutionPlaceholder, constitution, 1)
	if known && spec.Placeholder != "" {
		out = strings.Replace(out, spec.Placeholder, strings.TrimSpace(input), 1)
	}
	a.logger.Debug("prompt assembled",
		zap.String("category", string(spec.Name)),
		zap.String("template", spec.Template),
		zap.Int("bytes", len(out)),
	)
	return out, nil
}

// Copy assembles the prompt and writes it to clip.
func (a *Assembler) Copy(ctx context.Context, clip Clipboard, category string, input string) (string, error) {
	text, err := a.Assemble(ctx, category, input)
	if err != nil {
		return "", err
	}
	if err := clip.WriteAll(text); err != nil {
		return "", fmt.Errorf("prompt: clipboard: %w", err)
	}
	return text, nil
}
