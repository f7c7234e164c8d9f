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

type exitConfig struct {
	abnormal  bool
	code      ErrorCode
	msg       string
	callbacks []func()
}

func defaultExitConfig() exitConfig {
	return exitConfig{
		abnormal: false,
		code:     NormalCode,
	}
}

func (c *exitConfig) apply(opts ...ExitOption) {
	for _, opt := range opts {
		opt(c)
	}
}

func (c *exitConfig) runBeforeExit() {
	for _, cb := range c.callbacks {
		cb()
	}
}

type ExitOption func(c *exitConfig)

// WithAbnormalExit marks the exit as a failure, Unexpected unless a code is given.
func WithAbnormalExit() ExitOption {
	return func(c *exitConfig) {
		c.abnormal = true
		if c.code == NormalCode {
			c.code = Unexpected
		}
	}
}

func WithExitCode(code ErrorCode) ExitOption {
	return func(c *exitConfig) {
		c.code = code
	}
}

func WithMsg(msg string) ExitOption {
	return func(c *exitConfig) {
		c.msg = msg
	}
}

// AddCallbacks registers functions run right before the process exits.
func AddCallbacks(fns ...func()) ExitOption {
	return func(c *exitConfig) {
		c.callbacks = append(c.callbacks, fns...)
	}
}
