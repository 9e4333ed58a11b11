// Package pipeline sequences the batch feature-reduction run of spec.md
// §4.4: load → map target → optional user drops → missing stage → IV
// stage → correlation stage → final store. Grounded on
// solidcoredata-dca/internal/start's single-threaded sequential wiring;
// each stage's own per-feature/per-pair work is parallel, the controller
// itself is not.
package pipeline
