package util

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/lintang-b-s/interstatex/pkg"
	"github.com/spf13/viper"
)

// ReadConfig loads ./data/config.* (or configDir/config.*) into viper. A missing
// config file is fine, every key has a default.
func ReadConfig(configDir string) error {
	viper.SetConfigName("config")
	viper.AddConfigPath(configDir)

	err := viper.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("fatal error config file: %w", err)
	}
	return nil
}

type Config struct {
	OutputDir        string  `validate:"required"`
	ServesOutputFile string  `validate:"required,excludesall=/\\"`
	PathOutputFile   string  `validate:"required,excludesall=/\\"`
	CompressOutput   bool    `validate:"-"`
	LengthTolerance  float64 `validate:"gte=0"`
	ColocatedRadius  float64 `validate:"gte=0"`
}

func setDefaults() {
	viper.SetDefault("OUTPUT_DIR", ".")
	viper.SetDefault("SERVES_OUTPUT_FILE", pkg.SERVES_OUTPUT_FILE)
	viper.SetDefault("PATH_OUTPUT_FILE", pkg.PATH_OUTPUT_FILE)
	viper.SetDefault("COMPRESS_OUTPUT", false)
	viper.SetDefault("VERIFY_LENGTH_TOLERANCE_MILES", pkg.LENGTH_TOLERANCE_MILES)
	viper.SetDefault("VERIFY_COLOCATED_RADIUS_MILES", pkg.COLOCATED_RADIUS_MILES)
}

// LoadConfig reads the config file from configDir and returns the validated settings.
func LoadConfig(configDir string) (Config, error) {
	setDefaults()
	if err := ReadConfig(configDir); err != nil {
		return Config{}, WrapErrorf(err, ErrBadParamInput, "read config from %s", configDir)
	}

	config := Config{
		OutputDir:        viper.GetString("OUTPUT_DIR"),
		ServesOutputFile: viper.GetString("SERVES_OUTPUT_FILE"),
		PathOutputFile:   viper.GetString("PATH_OUTPUT_FILE"),
		CompressOutput:   viper.GetBool("COMPRESS_OUTPUT"),
		LengthTolerance:  viper.GetFloat64("VERIFY_LENGTH_TOLERANCE_MILES"),
		ColocatedRadius:  viper.GetFloat64("VERIFY_COLOCATED_RADIUS_MILES"),
	}

	if err := ValidateConfig(config); err != nil {
		return Config{}, err
	}
	return config, nil
}

func ValidateConfig(config Config) error {
	validate := validator.New()
	if err := validate.Struct(config); err != nil {
		english := en.New()
		uni := ut.New(english, english)
		trans, _ := uni.GetTranslator("en")
		_ = enTranslations.RegisterDefaultTranslations(validate, trans)
		vv := translateError(err, trans)
		vvString := []string{}
		for _, v := range vv {
			vvString = append(vvString, v.Error())
		}
		return WrapErrorf(err, ErrBadParamInput, "validation error: %v", strings.Join(vvString, "; "))
	}
	return nil
}

func translateError(err error, trans ut.Translator) (errs []error) {
	if err == nil {
		return nil
	}
	var validatorErrs validator.ValidationErrors
	if !errors.As(err, &validatorErrs) {
		return []error{err}
	}
	for _, e := range validatorErrs {
		translatedErr := fmt.Errorf("%s", e.Translate(trans))
		errs = append(errs, translatedErr)
	}
	return errs
}

// OutputPath joins the output dir with filename, adding the bzip2 suffix when compression is on.
func (c Config) OutputPath(filename string) string {
	path := filepath.Join(c.OutputDir, filename)
	if c.CompressOutput {
		path += pkg.BZIP2_SUFFIX
	}
	return path
}
