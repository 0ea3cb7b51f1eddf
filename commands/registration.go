package commands

import (
	"errors"

	command "github.com/goliatone/go-command"
	internalcmd "github.com/goliatone/go-localpages/internal/commands"
	generatecmd "github.com/goliatone/go-localpages/internal/commands/generate"
	"github.com/goliatone/go-localpages/internal/di"
	"github.com/goliatone/go-localpages/pkg/interfaces"
)

// CommandRegistry records command handlers so hosts can expose them via CLI or cron.
type CommandRegistry interface {
	RegisterCommand(handler any) error
}

// CommandDispatcher subscribes command handlers to a dispatcher implementation.
type CommandDispatcher interface {
	RegisterCommand(handler any) (CommandSubscription, error)
}

// CommandSubscription allows hosts to tear down dispatcher subscriptions.
type CommandSubscription interface {
	Unsubscribe()
}

// CronRegistrar registers command handlers with a cron scheduler.
type CronRegistrar func(command.HandlerConfig, any) error

// SummarySink receives the run summary each time a generation command completes.
type SummarySink = generatecmd.SummarySink

// RegistrationOptions configures how handlers are registered during construction.
type RegistrationOptions struct {
	Registry       CommandRegistry
	Dispatcher     CommandDispatcher
	CronRegistrar  CronRegistrar
	LoggerProvider interfaces.LoggerProvider
	// SummarySink observes generation outcomes; nil sinks are ignored.
	SummarySink SummarySink
}

// RegistrationResult captures the constructed command handlers and any dispatcher subscriptions.
type RegistrationResult struct {
	Handlers      []any
	Subscriptions []CommandSubscription
}

// RegisterContainerCommands builds the command handlers exposed by the provided container and
// optionally registers them with registry/dispatcher/cron integrations.
func RegisterContainerCommands(container *di.Container, opts RegistrationOptions) (*RegistrationResult, error) {
	if container == nil {
		return &RegistrationResult{}, nil
	}

	cfg := container.Config

	provider := opts.LoggerProvider
	if provider == nil {
		provider = container.LoggerProvider()
	}

	if opts.Registry != nil && opts.CronRegistrar != nil {
		if reg, ok := opts.Registry.(interface {
			SetCronRegister(func(command.HandlerConfig, any) error) *command.Registry
		}); ok && reg != nil {
			reg.SetCronRegister(opts.CronRegistrar)
		}
	}

	result := &RegistrationResult{
		Handlers:      make([]any, 0),
		Subscriptions: make([]CommandSubscription, 0),
	}

	var errs error

	register := func(handler any) {
		if handler == nil {
			return
		}
		result.Handlers = append(result.Handlers, handler)

		if opts.Registry != nil {
			if err := opts.Registry.RegisterCommand(handler); err != nil {
				errs = errors.Join(errs, err)
			}
		}

		if opts.Dispatcher != nil {
			subscription, err := opts.Dispatcher.RegisterCommand(handler)
			if err != nil {
				errs = errors.Join(errs, err)
			} else if subscription != nil {
				result.Subscriptions = append(result.Subscriptions, subscription)
			}
		}

		if opts.CronRegistrar != nil {
			if cronCmd, ok := handler.(command.CronCommand); ok {
				if err := opts.CronRegistrar(cronCmd.CronOptions(), cronCmd.CronHandler()); err != nil {
					errs = errors.Join(errs, err)
				}
			}
		}
	}

	commandsEnabled := cfg.Features.Commands || cfg.Commands.Enabled

	// Page generation commands.
	if generator := container.Generator(); generator != nil && commandsEnabled {
		logger := internalcmd.CommandLogger(provider, "pages")
		register(generatecmd.NewGeneratePagesHandler(generator, logger, opts.SummarySink,
			internalcmd.WithHandlerTelemetry(internalcmd.DefaultTelemetry[generatecmd.GeneratePagesCommand](logger))))
		register(generatecmd.NewRegeneratePagesHandler(generator, logger, opts.SummarySink,
			internalcmd.WithHandlerTelemetry(internalcmd.DefaultTelemetry[generatecmd.RegeneratePagesCommand](logger))))
	}

	if errs != nil && len(result.Handlers) == 0 {
		return result, errs
	}

	if len(result.Handlers) == 0 {
		return result, errors.New("no command handlers registered; ensure the generator is configured and the commands feature enabled")
	}

	return result, errs
}
