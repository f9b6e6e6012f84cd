package serialshell

const (
	augmentedCommandTemplateConstant     = "%s & echo -n $! > %s"
	trackingArtifactNameTemplateConstant = "serialrun_track.%d.%d"
)

const (
	launchStartedMessageConstant        = "launching augmented command"
	launchCompletedMessageConstant      = "augmented command launched"
	directExecutionMessageConstant      = "executing command directly"
	taskCompletedMessageConstant        = "spawned task completed"
	supervisionAbandonedMessageConstant = "supervision of spawned task abandoned"
)

const (
	logFieldCommandConstant           = "command"
	logFieldAugmentedCommandConstant  = "augmented_command"
	logFieldTrackingArtifactConstant  = "tracking_artifact"
	logFieldProvisionalStatusConstant = "provisional_status"
	logFieldProcessIdentifierConstant = "process_identifier"
)

const (
	loggerMissingMessageConstant                = "logger not configured"
	runnerMissingMessageConstant                = "command runner not configured"
	waiterMissingMessageConstant                = "process waiter not configured"
	trackingArtifactUnreadableMessageConstant   = "tracking artifact unreadable"
	waitableReferenceUnavailableMessageConstant = "waitable reference unavailable"
	trackingArtifactEmptyMessageConstant        = "tracking artifact never populated"
	launchFailureTemplateConstant               = "command launch failed: %w"
	supervisionFailureTemplateConstant          = "%w: %v"
	waitInterruptedTemplateConstant             = "wait for spawned task interrupted: %w"
)
