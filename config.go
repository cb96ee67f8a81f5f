package main

import (
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/pontaoski/lang/convert"
	"github.com/pontaoski/lang/reader"
	"github.com/ztrue/tracerr"
	"gopkg.in/yaml.v2"
)

const moduleInfoFile = "Lang Module Information"

type langModule struct {
	Package      string `yaml:"Package"`
	LogLevel     string `yaml:"LogLevel,omitempty"`
	SourceSuffix string `yaml:"SourceSuffix,omitempty"`
	MaxTextDepth int    `yaml:"MaxTextDepth,omitempty"`
}

func defaultModule(name string) langModule {
	return langModule{
		Package:      name,
		LogLevel:     "INFO",
		SourceSuffix: reader.DefaultSuffix,
		MaxTextDepth: convert.DefaultMaxTextDepth,
	}
}

// readModule loads the module information of dir. A directory without one
// gets the defaults; unset fields are defaulted too.
func readModule(dir string) (langModule, error) {
	doc := defaultModule(filepath.Base(dir))

	data, err := ioutil.ReadFile(filepath.Join(dir, moduleInfoFile))
	if os.IsNotExist(err) {
		return doc, nil
	}
	if err != nil {
		return doc, tracerr.Wrap(err)
	}

	var read langModule
	if err := yaml.Unmarshal(data, &read); err != nil {
		return doc, tracerr.Wrap(err)
	}

	if read.Package != "" {
		doc.Package = read.Package
	}
	if read.LogLevel != "" {
		doc.LogLevel = read.LogLevel
	}
	if read.SourceSuffix != "" {
		doc.SourceSuffix = read.SourceSuffix
	}
	if read.MaxTextDepth > 0 {
		doc.MaxTextDepth = read.MaxTextDepth
	}
	return doc, nil
}

func writeModule(dir string, doc langModule) error {
	out, err := yaml.Marshal(doc)
	if err != nil {
		return tracerr.Wrap(err)
	}
	return tracerr.Wrap(ioutil.WriteFile(filepath.Join(dir, moduleInfoFile), out, 0644))
}
