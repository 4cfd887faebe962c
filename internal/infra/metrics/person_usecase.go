package metrics

import (
	"context"
	"time"

	"personapi/internal/domain/entity"
	"personapi/internal/usecase"
)

// Operation names used as the "operation" label.
const (
	OpCreatePerson  = "create"
	OpCreatePersons = "create_batch"
	OpGetPerson     = "get"
	OpUpdatePerson  = "update"
	OpDeletePerson  = "delete"
	OpCountPersons  = "count"
	OpListPersons   = "list"
)

// instrumentedPersonUsecase records an outcome and a latency for every call it forwards.
type instrumentedPersonUsecase struct {
	next     usecase.PersonUsecase
	recorder *Recorder
}

// InstrumentPersonUsecase decorates next with operation metrics.
func InstrumentPersonUsecase(next usecase.PersonUsecase, recorder *Recorder) usecase.PersonUsecase {
	return &instrumentedPersonUsecase{next: next, recorder: recorder}
}

func (u *instrumentedPersonUsecase) CreatePerson(ctx context.Context, candidate *entity.Person) (person *entity.Person, err error) {
	defer u.observe(OpCreatePerson, time.Now(), &err)

	return u.next.CreatePerson(ctx, candidate)
}

func (u *instrumentedPersonUsecase) CreatePersons(ctx context.Context, candidates []*entity.Person) (persons []*entity.Person, err error) {
	defer u.observe(OpCreatePersons, time.Now(), &err)

	return u.next.CreatePersons(ctx, candidates)
}

func (u *instrumentedPersonUsecase) GetPerson(ctx context.Context, id int64) (person *entity.Person, err error) {
	defer u.observe(OpGetPerson, time.Now(), &err)

	return u.next.GetPerson(ctx, id)
}

func (u *instrumentedPersonUsecase) UpdatePerson(ctx context.Context, candidate *entity.Person, id int64) (person *entity.Person, err error) {
	defer u.observe(OpUpdatePerson, time.Now(), &err)

	return u.next.UpdatePerson(ctx, candidate, id)
}

func (u *instrumentedPersonUsecase) DeletePerson(ctx context.Context, id int64) (person *entity.Person, err error) {
	defer u.observe(OpDeletePerson, time.Now(), &err)

	return u.next.DeletePerson(ctx, id)
}

func (u *instrumentedPersonUsecase) CountPersons(ctx context.Context) (count int64, err error) {
	defer u.observe(OpCountPersons, time.Now(), &err)

	return u.next.CountPersons(ctx)
}

func (u *instrumentedPersonUsecase) ListPersons(ctx context.Context) (persons []*entity.Person, err error) {
	defer u.observe(OpListPersons, time.Now(), &err)

	return u.next.ListPersons(ctx)
}

func (u *instrumentedPersonUsecase) observe(operation string, start time.Time, err *error) {
	u.recorder.ObserveOperation(operation, start, *err)
}
