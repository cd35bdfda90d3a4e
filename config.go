package main

// this file contains all the code that directly uses the viper package
import (
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// configPaths are searched in order for the config file.
var configPaths = []string{"/etc/regmap", "."}

// loadConfig reads settings from a file called 'regmap.toml' (or
// regmap.yaml, regmap.json, ...).  It looks for this in /etc/regmap
// and then in the current directory.  Keys missing from the file keep
// the values already in s.  Environment variables are not consulted.
// Returns true if a config file was read.
func loadConfig(s *settings, paths ...string) (bool, error) {
	v := viper.New()
	v.SetConfigName("regmap") // name of config file (without extension)
	for _, p := range paths {
		v.AddConfigPath(p)
	}
	setDefaults(v, *s)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return false, nil
		}
		return false, errors.Wrap(err, "reading config")
	}
	if err := v.Unmarshal(s); err != nil {
		return false, errors.Wrapf(err, "decoding config %s", v.ConfigFileUsed())
	}
	return true, nil
}

// setDefaults registers s as viper's defaults, so Unmarshal keeps any
// value the file does not mention.
func setDefaults(v *viper.Viper, s settings) {
	v.SetDefault("output.dir", s.Output.Dir)
	v.SetDefault("output.source_ext", s.Output.SourceExt)
	v.SetDefault("output.golden_suffix", s.Output.GoldenSuffix)
	v.SetDefault("output.verilog", s.Output.Verilog)
	v.SetDefault("output.yaml", s.Output.YAML)
	v.SetDefault("class.name", s.Class.Name)
	v.SetDefault("parse.page_mask", s.Parse.PageMask)
}
