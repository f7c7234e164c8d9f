// Licensed to the LF AI & Data foundation under one
// or more contributor license agreements. See the NOTICE file
// distributed with this work for additional information
// regarding copyright ownership. The ASF licenses this file
// to you under the Apache License, Version 2.0 (the
// "License"); you may not use this file except in compliance
// with the License. You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package command

import (
	"flag"
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/milvus-io/lemmatizer/cmd/lemmatizer/configs"
	"github.com/milvus-io/lemmatizer/cmd/lemmatizer/console"
	"github.com/milvus-io/lemmatizer/internal/log"
	"github.com/milvus-io/lemmatizer/internal/util/paramtable"
	"github.com/milvus-io/lemmatizer/pkg/util/merr"
)

// Execute runs the lemmatizer on the process stdio and exits.
func Execute(args []string) {
	code, err := execute(args, os.Stdin, os.Stdout, os.Stderr)
	syncLog := console.AddCallbacks(func() { _ = log.Sync() })
	console.AbnormalExitIf(err, code, syncLog)
	console.NormalExit("", syncLog)
}

func execute(args []string, stdin io.Reader, stdout, stderr io.Writer) (console.ErrorCode, error) {
	name := "lemmatizer"
	if len(args) > 0 {
		name = args[0]
	}
	flags := flag.NewFlagSet(name, flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.Usage = func() {
		console.Warning(usageLine)
	}

	c := &commandParser{}
	if err := c.format(args, flags); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return console.NormalCode, nil
		}
		return console.InvalidUsage, err
	}
	if c.showVersion {
		printVersion(stdout)
		return console.NormalCode, nil
	}

	// Configuration problems never fail the run: bad analyzer settings make
	// the analyzer unavailable, anything else falls back to its default.
	cfg, cfgErr := loadConfig(c)
	if cfg == nil {
		return console.Unexpected, cfgErr
	}
	logger, _, err := log.InitLogger(cfg.Log)
	if err != nil {
		cfgErr = merr.Combine(cfgErr, merr.WrapErrConfigInvalid(configs.LogFileNameKey, cfg.Log.File.Filename, err.Error()))
	} else {
		log.ReplaceGlobals(logger)
	}
	if cfgErr != nil {
		log.Warn("invalid configuration ignored",
			zap.Int32("code", merr.Code(cfgErr)),
			zap.Error(cfgErr))
	}
	log.Debug("config loaded", zap.String("file", cfg.YamlFile()), zap.Stringer("config", cfg))

	err = NewRunner(stdin, stdout).Run(cfg)
	switch {
	case err == nil:
		return console.NormalCode, nil
	case errors.Is(err, merr.ErrRequestMalformed):
		return console.MalformedRequest, err
	default:
		return console.Unexpected, err
	}
}

// loadConfig layers command line flags over env and yaml. An unreadable
// yaml file leaves env and flags in effect and disables the analyzer.
func loadConfig(c *commandParser) (*configs.Config, error) {
	base, yamlErr := paramtable.NewBaseTable(paramtable.Files(c.configYaml))
	if yamlErr != nil {
		var err error
		if base, err = paramtable.NewBaseTable(); err != nil {
			return nil, err
		}
	}
	if c.dictionary != "" {
		_ = base.Save(configs.AnalyzerDictionaryKey, c.dictionary)
	}
	if c.logLevel != "" {
		_ = base.Save(configs.LogLevelKey, c.logLevel)
	}
	cfg, err := configs.NewConfig(base)
	cfg.Disable(yamlErr)
	return cfg, merr.Combine(yamlErr, err)
}
