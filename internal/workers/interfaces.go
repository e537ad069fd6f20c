// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers runs maintenance jobs over the local note store before the
// interactive session starts.
package workers

import "context"

// Worker is one maintenance job. Run returns when the job is done; a
// returned error is reported but does not stop the other workers.
type Worker interface {
	Run(ctx context.Context) error
}
