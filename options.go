package impulse

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/jinzhu/copier"
	"gopkg.in/yaml.v3"

	"github.com/vova616/impulse/vect"
)

type SweepPruneOptions struct {
	// Topic the candidate pairs are published on.
	Channel string `yaml:"channel"`
}

type DetectionOptions struct {
	// Test every pair instead of sweeping.
	CheckAll      bool       `yaml:"checkAll"`
	Channel       string     `yaml:"channel"`
	MaxIterations int        `yaml:"maxIterations"`
	MarginStep    vect.Float `yaml:"marginStep"`
}

type EdgeOptions struct {
	// World bounds, edge detection is off while they are empty.
	Bounds      AABB       `yaml:"bounds"`
	Restitution vect.Float `yaml:"restitution"`
	Cof         vect.Float `yaml:"cof"`
	Channel     string     `yaml:"channel"`
}

type ResponseOptions struct {
	// Squared MTV length below which the extraction is damped.
	MTVThreshold       vect.Float `yaml:"mtvThreshold"`
	BodyExtractDropoff vect.Float `yaml:"bodyExtractDropoff"`
	ForceWakeup        bool       `yaml:"forceWakeup"`
}

type IntegratorOptions struct {
	// Fraction of velocity removed per pass, 0 to 1.
	Drag vect.Float `yaml:"drag"`
}

type ConstraintOptions struct {
	Iterations int `yaml:"iterations"`
}

type SleepOptions struct {
	Disabled          bool       `yaml:"disabled"`
	SpeedLimit        vect.Float `yaml:"speedLimit"`
	AngularSpeedLimit vect.Float `yaml:"angularSpeedLimit"`
	// Seconds a body must stay below the limits before it sleeps.
	TimeLimit vect.Float `yaml:"timeLimit"`
}

type WorldOptions struct {
	// Fixed step used by Advance, in seconds.
	Timestep vect.Float `yaml:"timestep"`
	// Most steps Advance runs per call.
	MaxIPF     int       `yaml:"maxIPF"`
	Integrator string    `yaml:"integrator"`
	Gravity    vect.Vect `yaml:"gravity"`
}

type Options struct {
	World       WorldOptions      `yaml:"world"`
	SweepPrune  SweepPruneOptions `yaml:"sweepPrune"`
	Detection   DetectionOptions  `yaml:"detection"`
	Edges       EdgeOptions       `yaml:"edges"`
	Response    ResponseOptions   `yaml:"response"`
	Integrator  IntegratorOptions `yaml:"integrator"`
	Constraints ConstraintOptions `yaml:"constraints"`
	Sleep       SleepOptions      `yaml:"sleep"`
}

func DefaultOptions() Options {
	return Options{
		World: WorldOptions{
			Timestep:   1.0 / 160,
			MaxIPF:     4,
			Integrator: IntegratorVerlet,
		},
		SweepPrune: SweepPruneOptions{
			Channel: Topic_Candidates,
		},
		Detection: DetectionOptions{
			Channel:       Topic_Detected,
			MaxIterations: GJKMaxIterations,
			MarginStep:    1,
		},
		Edges: EdgeOptions{
			Restitution: 0.99,
			Cof:         1,
			Channel:     Topic_Detected,
		},
		Response: ResponseOptions{
			MTVThreshold:       1,
			BodyExtractDropoff: 0.5,
			ForceWakeup:        true,
		},
		Constraints: ConstraintOptions{
			Iterations: 2,
		},
		Sleep: SleepOptions{
			SpeedLimit:        0.05,
			AngularSpeedLimit: 0.05,
			TimeLimit:         0.5,
		},
	}
}

// Merge copies every non-zero field of override into o. Zero values keep what o has,
// so switching a default off is done on the record itself or through LoadOptions.
func (o *Options) Merge(override Options) error {
	opt := copier.Option{IgnoreEmpty: true}
	records := []struct {
		to, from interface{}
	}{
		{&o.World, &override.World},
		{&o.SweepPrune, &override.SweepPrune},
		{&o.Detection, &override.Detection},
		{&o.Edges, &override.Edges},
		{&o.Response, &override.Response},
		{&o.Integrator, &override.Integrator},
		{&o.Constraints, &override.Constraints},
		{&o.Sleep, &override.Sleep},
	}
	for _, r := range records {
		if err := copier.CopyWithOption(r.to, r.from, opt); err != nil {
			return fmt.Errorf("impulse: merging options: %w", err)
		}
	}
	return nil
}

// Decodes YAML over the defaults. Keys that are absent keep their default.
func ParseOptions(data []byte) (Options, error) {
	opts := DefaultOptions()
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return opts, fmt.Errorf("impulse: parsing options: %w", err)
	}
	return opts, nil
}

// Reads options from a YAML file. A missing file yields the defaults.
func LoadOptions(path string) (Options, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return DefaultOptions(), nil
	}
	if err != nil {
		return DefaultOptions(), fmt.Errorf("impulse: reading options: %w", err)
	}
	return ParseOptions(data)
}
