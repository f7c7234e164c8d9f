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

package console

import (
	"os"
)

var exitFunc = os.Exit

func ExitWithOption(opts ...ExitOption) {
	c := defaultExitConfig()
	c.apply(opts...)
	if c.abnormal {
		Error(c.msg)
	} else {
		Success(c.msg)
	}
	c.runBeforeExit()
	exitFunc(c.code)
}

func AbnormalExit(code ErrorCode, msg string, options ...ExitOption) {
	opts := append([]ExitOption{}, options...)
	opts = append(opts, WithExitCode(code), WithAbnormalExit(), WithMsg(msg))
	ExitWithOption(opts...)
}

func AbnormalExitIf(err error, code ErrorCode, options ...ExitOption) {
	if err != nil {
		AbnormalExit(code, err.Error(), options...)
	}
}

func NormalExit(msg string, options ...ExitOption) {
	opts := append([]ExitOption{}, options...)
	opts = append(opts, WithExitCode(NormalCode), WithMsg(msg))
	ExitWithOption(opts...)
}
