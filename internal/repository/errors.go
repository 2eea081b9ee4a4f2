package repository

import "errors"

// ErrBackupNotFound signals that no backup exists for a sync id. This is a
// normal outcome, not a failure: the save path treats it as a first-time
// backup, the restore path reports it to the user.
var ErrBackupNotFound = errors.New("no backup found for sync id")

// ErrCorruptBackup signals that a stored record did not survive shape
// validation. Malformed remote data must never reach the merge engine.
var ErrCorruptBackup = errors.New("corrupt backup record")
