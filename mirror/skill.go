package mirror

import (
	"github.com/hupe1980/mirrorskill/core"
	"github.com/hupe1980/mirrorskill/logging"
	"github.com/hupe1980/mirrorskill/skill"
)

// Options configures the mirror skill.
type Options struct {
	// PersistLearned makes SaveCharacteristicIntent store the elicited pair.
	// When false the name is only acknowledged and nothing is remembered.
	PersistLearned bool

	// Logger defaults to NoOpLogger if nil.
	Logger logging.Logger
}

// Routes returns the route table in evaluation order.
func Routes(opts Options) []skill.Route {
	return []skill.Route{
		{Name: "Launch", Handler: LaunchHandler{}},
		{Name: "WhoIsTheXofAll", Handler: WhoIsTheXofAllHandler{}},
		{Name: "SaveCharacteristic", Handler: SaveCharacteristicHandler{PersistLearned: opts.PersistLearned}},
		{Name: "Help", Handler: HelpHandler{}},
		{Name: "CancelAndStop", Handler: CancelAndStopHandler{}},
		{Name: "Fallback", Handler: FallbackHandler{}},
		{Name: "SessionEnded", Handler: SessionEndedHandler{}},
		{Name: "IntentReflector", Handler: IntentReflectorHandler{}},
	}
}

// NewSkill wires the mirror handlers, interceptors and error handler on top
// of store.
func NewSkill(store core.AttributesStore, optFns ...func(o *Options)) *skill.Skill {
	opts := Options{Logger: logging.NoOpLogger{}}
	for _, fn := range optFns {
		fn(&opts)
	}

	return skill.New(func(o *skill.Options) {
		o.Routes = Routes(opts)
		o.RequestInterceptors = []core.RequestInterceptor{LoadStateInterceptor{}}
		o.ResponseInterceptors = []core.ResponseInterceptor{LogResponseInterceptor{}}
		o.ErrorHandlers = []core.ErrorHandler{ErrorHandler{}}
		o.Store = store
		o.Logger = opts.Logger
	})
}
