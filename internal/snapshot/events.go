package snapshot

// EventCode identifies a progress event emitted during an operation. Codes
// are stable machine-readable strings; human-readable rendering is up to the
// Reporter.
type EventCode string

// Event codes, in rough order of appearance per operation.
const (
	EventSavingWip                EventCode = "saving-wip"
	EventCreatedBranch            EventCode = "created-branch"
	EventStagedAllChanges         EventCode = "staged-all-changes"
	EventCommittedChanges         EventCode = "committed-changes"
	EventPushedChanges            EventCode = "pushed-changes"
	EventSkippedPushNoRemote      EventCode = "skipped-push-no-remote"
	EventSwitchedBack             EventCode = "switched-back"
	EventWipBranchCreated         EventCode = "wip-branch-created"
	EventNothingToSave            EventCode = "nothing-to-save"
	EventRestoringWip             EventCode = "restoring-wip"
	EventStashingExistingChanges  EventCode = "stashing-existing-changes"
	EventCheckedOutBranch         EventCode = "checked-out-branch"
	EventAppliedChanges           EventCode = "applied-changes"
	EventRecreatedFileStates      EventCode = "recreated-file-states"
	EventRestoringExistingChanges EventCode = "restoring-existing-changes"
	EventAppliedStash             EventCode = "applied-stash"
	EventWipBranchDeleted         EventCode = "wip-branch-deleted"
	EventRestoreComplete          EventCode = "restore-complete"
	EventDeletedLocalBranch       EventCode = "deleted-local-branch"
	EventDeletedRemoteBranch      EventCode = "deleted-remote-branch"
	EventRemoteDeleteFailed       EventCode = "remote-delete-failed"
	EventDeleteComplete           EventCode = "delete-complete"
	EventNoWipBranches            EventCode = "no-wip-branches"
	EventNoBranchesSelected       EventCode = "no-branches-selected"
	EventOperationCancelled       EventCode = "operation-cancelled"
)

// Event is a single progress notification.
type Event struct {
	Code   EventCode
	Branch string // Branch the event concerns, when applicable
	Count  int    // Count for aggregate events, when applicable
	Err    error  // Cause for failure events, when applicable
}

// Reporter receives progress events during snapshot operations.
type Reporter interface {
	Report(Event)
}

// report forwards an event to the configured reporter, if any.
func (m *Manager) report(e Event) {
	if m.reporter == nil {
		return
	}
	m.reporter.Report(e)
}
