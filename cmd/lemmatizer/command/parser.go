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

	"github.com/cockroachdb/errors"
)

const usageLine = `Usage: lemmatizer [options] < request.json > response.json

Reads {"tokens": [...]} from stdin and writes {"lemmas": [...]} to stdout.

Options:
  -config <file>     yaml configuration file
  -dict <path>       OpenCorpora dictionary, overrides analyzer.dictionary
  -log-level <level> overrides log.level
  -version           print version information and exit

Environment variables LEMMATIZER_<KEY> override the yaml file, for example
LEMMATIZER_ANALYZER_DICTIONARY=/data/dict.opcorpora.txt.gz.`

type commandParser struct {
	configYaml  string
	dictionary  string
	logLevel    string
	showVersion bool
}

func (c *commandParser) format(args []string, flags *flag.FlagSet) error {
	flags.StringVar(&c.configYaml, "config", "", "yaml configuration file")
	flags.StringVar(&c.dictionary, "dict", "", "dictionary path")
	flags.StringVar(&c.logLevel, "log-level", "", "log level")
	flags.BoolVar(&c.showVersion, "version", false, "print version information")

	if len(args) == 0 {
		return nil
	}
	if err := flags.Parse(args[1:]); err != nil {
		return err
	}
	if flags.NArg() > 0 {
		return errors.Newf("unexpected arguments: %v", flags.Args())
	}
	return nil
}
