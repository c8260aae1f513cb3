package ga

import (
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/XiaoConstantine/knapsack-go/pkg/errors"
)

// Config contains configuration for the genetic optimizer. All validation
// happens at construction time; a run never starts with an invalid
// configuration.
type Config struct {
	// Budget is the maximum total cost a feasible selection may reach.
	// Zero is legal and deterministically yields the empty selection.
	Budget float64 `yaml:"budget" json:"budget" validate:"gte=0"`

	// PopulationSize must be even because crossover pairs parents.
	PopulationSize int `yaml:"population_size" json:"population_size" validate:"gte=2,even"`

	// NumGenerations is the number of generational transitions after the
	// initial random population. Zero is legal.
	NumGenerations int `yaml:"num_generations" json:"num_generations" validate:"gte=0"`

	CrossoverRate float64       `yaml:"crossover_rate" json:"crossover_rate" validate:"gte=0,lte=1"`
	MutationRate  float64       `yaml:"mutation_rate" json:"mutation_rate" validate:"gte=0,lte=1"`
	CrossoverMode CrossoverMode `yaml:"crossover_mode" json:"crossover_mode" validate:"oneof=single_point random_point"`

	// Seed for the run's random source. Zero or negative selects a
	// time-based seed; fixed positive seeds reproduce the exact population
	// sequence and solution.
	Seed int64 `yaml:"seed" json:"seed"`

	// Concurrency bounds the goroutines used for fitness evaluation within
	// a generation. Zero selects the default.
	Concurrency int `yaml:"concurrency" json:"concurrency" validate:"gte=0"`
}

// DefaultConfig returns the default optimizer configuration.
func DefaultConfig() Config {
	return Config{
		Budget:         100.0,
		PopulationSize: 16,
		NumGenerations: 1000,
		CrossoverRate:  0.8,
		MutationRate:   0.15,
		CrossoverMode:  SinglePoint,
		Concurrency:    3,
	}
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// "even" has no builtin; crossover pairs parents so the population size
	// must split into pairs.
	if err := v.RegisterValidation("even", func(fl validator.FieldLevel) bool {
		return fl.Field().Int()%2 == 0
	}); err != nil {
		panic(err)
	}
	return v
}

// Validate checks the configuration, returning a coded error describing the
// first group of violated constraints.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return errors.Wrap(err, errors.InvalidConfig, "invalid optimizer configuration")
	}
	return nil
}

// LoadConfig reads a YAML configuration file, filling unset fields from
// DefaultConfig before validating.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.WithFields(
			errors.Wrap(err, errors.ResourceNotFound, "failed to read config file"),
			errors.Fields{"path": path})
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, errors.Wrap(err, errors.InvalidInput, "failed to parse config YAML")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
