package background

import (
	"errors"

	"github.com/RichardKnop/machinery/v1"
	"github.com/RichardKnop/machinery/v1/tasks"
)

const (
	IngestTaskName    = "ingest_dataset"
	IngestAllTaskName = "ingest_all_datasets"

	workerTag = "foodprice-worker"
)

// Enqueuer - schedules ingestion of datasets
type Enqueuer interface {
	EnqueueIngest(name string) (string, error)
}

// BackgroundManager is a struct for the ingestion background manager
type BackgroundManager struct {
	ingestor *Ingestor

	taskServer *machinery.Server

	worker *machinery.Worker
}

func New(taskServer *machinery.Server, ingestor *Ingestor) *BackgroundManager {
	return &BackgroundManager{
		ingestor:   ingestor,
		taskServer: taskServer,
	}
}

// RegisterTasks registers the ingestion tasks to the task server
func (m *BackgroundManager) RegisterTasks() error {
	return m.taskServer.RegisterTasks(map[string]interface{}{
		IngestTaskName:    m.ingestor.Ingest,
		IngestAllTaskName: m.ingestAll,
	})
}

func (m *BackgroundManager) ingestAll() error {
	return m.ingestor.IngestAll(m.ingestor.countries.Directories())
}

// Run spawn workers to execute background jobs
func (m *BackgroundManager) Run(concurrency int) error {
	if m.worker != nil {
		return errors.New("background worker has started")
	}
	m.worker = m.taskServer.NewWorker(workerTag, concurrency)
	return m.worker.Launch()
}

// Stop stops the running worker
func (m *BackgroundManager) Stop() {
	if m.worker != nil {
		m.worker.Quit()
	}
}

// TaskEnqueuer sends ingestion tasks to the task server
type TaskEnqueuer struct {
	taskServer *machinery.Server
}

func NewTaskEnqueuer(taskServer *machinery.Server) *TaskEnqueuer {
	return &TaskEnqueuer{taskServer: taskServer}
}

// EnqueueIngest sends an ingestion task and returns the task id
func (e *TaskEnqueuer) EnqueueIngest(name string) (string, error) {
	result, err := e.taskServer.SendTask(IngestSignature(name))
	if err != nil {
		return "", err
	}
	return result.Signature.UUID, nil
}

// IngestSignature returns the task signature ingesting a dataset
func IngestSignature(name string) *tasks.Signature {
	return &tasks.Signature{
		Name: IngestTaskName,
		Args: []tasks.Arg{
			{
				Type:  "string",
				Value: name,
			},
		},
	}
}

// InlineEnqueuer ingests right away in the caller's goroutine. It serves
// deployments without a task broker.
type InlineEnqueuer struct {
	ingestor   *Ingestor
	onIngested func(key string)
}

// NewInlineEnqueuer - onIngested is called with the record key after every
// successful ingestion. It may be nil.
func NewInlineEnqueuer(ingestor *Ingestor, onIngested func(key string)) *InlineEnqueuer {
	return &InlineEnqueuer{
		ingestor:   ingestor,
		onIngested: onIngested,
	}
}

// EnqueueIngest ingests the dataset and returns the record key
func (e *InlineEnqueuer) EnqueueIngest(name string) (string, error) {
	key, err := e.ingestor.Ingest(name)
	if err != nil {
		return "", err
	}

	if e.onIngested != nil {
		e.onIngested(key)
	}
	return key, nil
}
