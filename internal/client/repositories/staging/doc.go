// Package staging is the temporary local file store of the client.
//
// Photos picked before the user has an account are written here and
// referenced by generated ids from a local draft. The handoff resolves the
// ids back into files, submits them, and deletes that attempt's files on
// success. Files of other pending drafts stay staged.
//
//	ids, err := repo.Save(ctx, files)      // all-or-nothing
//	staged, err := repo.Get(ctx, ids)      // nil entry for an unknown id
//	err = repo.Delete(ctx, ids)            // unknown ids are skipped
//	err = repo.Clear(ctx)                  // idempotent
package staging
