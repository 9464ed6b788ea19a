package tasks

// TaskSchedulerInterface defines the interface for task scheduling
// operations. The main application enqueues one build task per enabled
// partner and waits for the batch to drain.
// Example usage:
//
//	scheduler := NewScheduler()
//	scheduler.Start()
//	defer scheduler.Stop()
//	scheduler.EnqueueTask(NewBuildPartnerTask(...))
//	scheduler.Wait()
type TaskSchedulerInterface interface {
	Start()
	Stop()
	Wait()
	EnqueueTask(task TaskInterface) error
}
