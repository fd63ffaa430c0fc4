package homepage

import (
	"github.com/grovetools/homeshell/embedding"
	"github.com/grovetools/homeshell/errors"
	"github.com/grovetools/homeshell/intent"
	"github.com/grovetools/homeshell/logging"
	"github.com/sirupsen/logrus"
)

// DeepLinkAlias is the alias component the homepage is addressed by
// when it hosts a deep-linked secondary pane.
var DeepLinkAlias = intent.ComponentName{Package: "homeshell", Class: "DeepLinkHomepage"}

// SettingsRoot is the root settings component paired with every
// deep-linked destination.
var SettingsRoot = intent.ComponentName{Package: "homeshell", Class: "SettingsRoot"}

// RouteOutcome reports what Route did with a request.
type RouteOutcome int

const (
	// RouteNotApplicable means the request is not a deep link (or
	// embedding is off) and nothing happened.
	RouteNotApplicable RouteOutcome = iota

	// RouteDispatched means the target was resolved and launched.
	RouteDispatched

	// RouteTerminated means the deep link was invalid; the caller must
	// end the current navigation context.
	RouteTerminated
)

// String renders the outcome for logs.
func (o RouteOutcome) String() string {
	switch o {
	case RouteNotApplicable:
		return "not-applicable"
	case RouteDispatched:
		return "dispatched"
	case RouteTerminated:
		return "terminated"
	}
	return "unknown"
}

// Resolver is the system intent-resolver collaborator.
type Resolver interface {
	ParseURI(uri string) (*intent.NavigationRequest, error)
	ResolveComponent(req *intent.NavigationRequest) (intent.ComponentName, bool)
}

// RuleRegistry receives the pane rules for a dispatched deep link.
type RuleRegistry interface {
	RegisterTwoPanePairRule(rule embedding.PaneRule)
}

// Dispatcher launches a resolved destination. Fire and forget: the
// router logs a failed start but still reports the request dispatched.
type Dispatcher interface {
	Start(req *intent.NavigationRequest) error
}

// DeepLinkRouter decides whether an inbound request is a deep link and,
// when it is, resolves and forwards it to the secondary pane.
type DeepLinkRouter struct {
	resolver   Resolver
	rules      RuleRegistry
	dispatcher Dispatcher
	host       intent.ComponentName
	log        *logrus.Entry
}

// NewDeepLinkRouter creates a router that pairs dispatched targets with
// the default homepage alias.
func NewDeepLinkRouter(resolver Resolver, rules RuleRegistry, dispatcher Dispatcher) *DeepLinkRouter {
	return &DeepLinkRouter{
		resolver:   resolver,
		rules:      rules,
		dispatcher: dispatcher,
		host:       DeepLinkAlias,
		log:        logging.NewLogger("deeplink"),
	}
}

// Route inspects req and, for a valid deep link, dispatches its target
// to the secondary pane. The non-deep-link short circuits have no side
// effects at all, so Route is safe to call on every activation and
// every re-entry.
//
// On success the original request's action tag is cleared in place
// before dispatch: a stored request re-delivered later (configuration
// reload) must not re-trigger the route.
func (r *DeepLinkRouter) Route(req *intent.NavigationRequest, embeddingEnabled bool) (RouteOutcome, error) {
	if !embeddingEnabled {
		return RouteNotApplicable, nil
	}
	if req == nil || req.Action != intent.ActionDeepLink {
		return RouteNotApplicable, nil
	}

	uriString := req.StringExtra(intent.ExtraDeepLinkURI)
	if uriString == "" {
		err := errors.DeepLinkPayloadMissing()
		r.log.Error(err.Message)
		return RouteTerminated, err
	}

	target, parseErr := r.resolver.ParseURI(uriString)
	if parseErr != nil {
		err := errors.DeepLinkParseFailed(uriString, parseErr)
		r.log.WithError(parseErr).Error("failed to parse deep link intent URI")
		return RouteTerminated, err
	}

	component, ok := r.resolver.ResolveComponent(target)
	if !ok {
		err := errors.DeepLinkUnresolved(target.Action)
		r.log.WithField("action", target.Action).Error("no valid target for the deep link intent")
		return RouteTerminated, err
	}
	target.Component = component

	// Consume the action so a re-delivered stored request is a no-op.
	// Cleared before dispatch: a crash between here and Start must not
	// leave the tag consumed with nothing launched on restart.
	req.Action = ""

	target.ClearFlags(intent.FlagNewTask)
	target.AddFlags(intent.FlagForwardResult)

	// The sender may address extras to the target; originals win on
	// key collision.
	for key, value := range req.Extras {
		target.PutExtra(key, value)
	}
	target.PutExtra(intent.ExtraFromExternalTile, "false")

	// The data URI travels in its own extra, not inside the encoded
	// URI, so a complex scheme cannot corrupt the parse above.
	target.Data = req.StringExtra(intent.ExtraDeepLinkData)

	for _, primary := range []intent.ComponentName{r.host, SettingsRoot} {
		r.rules.RegisterTwoPanePairRule(embedding.PaneRule{
			Primary:                    primary,
			Secondary:                  component,
			Action:                     target.Action,
			FinishPrimaryWithSecondary: true,
			FinishSecondaryWithPrimary: true,
			ClearTop:                   true,
		})
	}

	if err := r.dispatcher.Start(target); err != nil {
		r.log.WithError(err).Warn("dispatcher failed to start deep link target")
	}

	r.log.WithFields(logrus.Fields{
		"target": component.String(),
		"action": target.Action,
	}).Info("dispatched deep link to secondary pane")
	return RouteDispatched, nil
}
