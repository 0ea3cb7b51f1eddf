package generatecmd

import (
	"context"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/goliatone/go-localpages/internal/commands"
	intpages "github.com/goliatone/go-localpages/internal/pages"
	"github.com/goliatone/go-localpages/pkg/interfaces"
	"github.com/google/uuid"
)

const (
	generatePagesMessageType   = "localpages.pages.generate"
	regeneratePagesMessageType = "localpages.pages.regenerate"
)

// GeneratePagesCommand requests page generation for one city. Existing pages
// are skipped, never overwritten.
type GeneratePagesCommand struct {
	CityID uuid.UUID `json:"city_id"`
}

// Type implements command.Message.
func (GeneratePagesCommand) Type() string { return generatePagesMessageType }

// Validate ensures the message carries the required fields before reaching handlers.
func (m GeneratePagesCommand) Validate() error {
	errs := validation.Errors{}
	if m.CityID == uuid.Nil {
		errs["city_id"] = validation.NewError("localpages.pages.generate.city_id_required", "city_id is required")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// RegeneratePagesCommand requests a destructive rewrite of every page for one
// city, discarding manual edits.
type RegeneratePagesCommand struct {
	CityID uuid.UUID `json:"city_id"`
}

// Type implements command.Message.
func (RegeneratePagesCommand) Type() string { return regeneratePagesMessageType }

// Validate ensures the message carries the required fields before reaching handlers.
func (m RegeneratePagesCommand) Validate() error {
	errs := validation.Errors{}
	if m.CityID == uuid.Nil {
		errs["city_id"] = validation.NewError("localpages.pages.regenerate.city_id_required", "city_id is required")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// SummarySink receives the run summary once a generation command completes.
type SummarySink func(*intpages.Summary)

// GeneratePagesHandler drives the generator through the shared command handler foundation.
type GeneratePagesHandler struct {
	inner *commands.Handler[GeneratePagesCommand]
}

// NewGeneratePagesHandler constructs a handler wired to the provided generator.
func NewGeneratePagesHandler(generator *intpages.Generator, logger interfaces.Logger, sink SummarySink, opts ...commands.HandlerOption[GeneratePagesCommand]) *GeneratePagesHandler {
	exec := func(ctx context.Context, msg GeneratePagesCommand) error {
		summary, err := generator.Generate(ctx, msg.CityID)
		if err != nil {
			return err
		}
		if sink != nil {
			sink(summary)
		}
		return nil
	}

	handlerOpts := []commands.HandlerOption[GeneratePagesCommand]{
		commands.WithLogger[GeneratePagesCommand](logger),
		commands.WithOperation[GeneratePagesCommand]("pages.generate"),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &GeneratePagesHandler{
		inner: commands.NewHandler[GeneratePagesCommand](exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[GeneratePagesCommand].Execute.
func (h *GeneratePagesHandler) Execute(ctx context.Context, msg GeneratePagesCommand) error {
	return h.inner.Execute(ctx, msg)
}

// RegeneratePagesHandler drives destructive regeneration through the shared foundation.
type RegeneratePagesHandler struct {
	inner *commands.Handler[RegeneratePagesCommand]
}

// NewRegeneratePagesHandler constructs a handler wired to the provided generator.
func NewRegeneratePagesHandler(generator *intpages.Generator, logger interfaces.Logger, sink SummarySink, opts ...commands.HandlerOption[RegeneratePagesCommand]) *RegeneratePagesHandler {
	exec := func(ctx context.Context, msg RegeneratePagesCommand) error {
		summary, err := generator.Regenerate(ctx, msg.CityID)
		if err != nil {
			return err
		}
		if sink != nil {
			sink(summary)
		}
		return nil
	}

	handlerOpts := []commands.HandlerOption[RegeneratePagesCommand]{
		commands.WithLogger[RegeneratePagesCommand](logger),
		commands.WithOperation[RegeneratePagesCommand]("pages.regenerate"),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &RegeneratePagesHandler{
		inner: commands.NewHandler[RegeneratePagesCommand](exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[RegeneratePagesCommand].Execute.
func (h *RegeneratePagesHandler) Execute(ctx context.Context, msg RegeneratePagesCommand) error {
	return h.inner.Execute(ctx, msg)
}
