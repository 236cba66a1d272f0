// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// errTestPage is the failure raised by the /error-test page outside the
// build phase.
var errTestPage = errors.New("This is a test error")
