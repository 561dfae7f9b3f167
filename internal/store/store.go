package store

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"arogya360-portal/internal/models"
	"arogya360-portal/internal/storage"

	"github.com/rs/zerolog"
)

// firstToken is the token number issued when no appointment exists yet
const firstToken = 101

// persistTimeout bounds one snapshot write, which outlives the caller's context
const persistTimeout = 10 * time.Second

var collectionKeys = []string{
	storage.KeyHospitals,
	storage.KeyDoctors,
	storage.KeyAppointments,
	storage.KeyOrders,
	storage.KeyStores,
}

const (
	defaultHospitalTokens = 50
	defaultHospitalRating = 4.5
	defaultHospitalWait   = "15 mins"
	defaultHospitalImage  = "https://picsum.photos/400/300"
	defaultStoreRating    = 4.0
	unknownHospitalName   = "Unknown Hospital"
)

// Change describes one committed mutation
type Change struct {
	Collection string
	Action     string
	Record     any
}

// ResetRecord is the Change record of a reset
type ResetRecord struct {
	Collections []string `json:"collections"`
}

// Store holds the five portal collections in memory and writes a full
// snapshot of a collection after every mutation that touches it.
type Store struct {
	mu sync.RWMutex

	adapter   *storage.Adapter
	logger    zerolog.Logger
	clock     func() time.Time
	ids       IDGenerator
	pricer    Pricer
	addresses AddressResolver
	defaults  func() models.PortalSnapshot

	async bool
	dirty map[string]bool

	observersMu sync.RWMutex
	observers   []func(Change)

	hospitals    []models.Hospital
	doctors      []models.Doctor
	appointments []models.Appointment
	orders       []models.MedicineOrder
	stores       []models.MedicalStore
}

type Option func(*Store)

func WithClock(clock func() time.Time) Option {
	return func(s *Store) { s.clock = clock }
}

func WithIDGenerator(ids IDGenerator) Option {
	return func(s *Store) { s.ids = ids }
}

func WithPricer(p Pricer) Option {
	return func(s *Store) { s.pricer = p }
}

func WithAddressResolver(r AddressResolver) Option {
	return func(s *Store) { s.addresses = r }
}

// WithDefaults sets the dataset used for missing or unreadable snapshots and on Reset
func WithDefaults(defaults func() models.PortalSnapshot) Option {
	return func(s *Store) { s.defaults = defaults }
}

func WithLogger(logger zerolog.Logger) Option {
	return func(s *Store) { s.logger = logger }
}

// WithAsyncPersistence defers snapshot writes to Flush
func WithAsyncPersistence() Option {
	return func(s *Store) { s.async = true }
}

// New builds a store and hydrates it from the adapter
func New(ctx context.Context, adapter *storage.Adapter, opts ...Option) *Store {
	s := &Store{
		adapter:   adapter,
		logger:    zerolog.Nop(),
		clock:     time.Now,
		ids:       UUIDGenerator{},
		pricer:    DefaultPricer,
		addresses: DefaultDeliveryAddress,
		defaults:  DefaultData,
		dirty:     make(map[string]bool),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With().Str("component", "store").Logger()

	s.mu.Lock()
	defer s.mu.Unlock()
	results := s.hydrate(ctx)
	for _, key := range collectionKeys {
		// Unreadable snapshots are never overwritten with defaults
		if results[key] == storage.AccessError {
			s.logger.Warn().Str("collection", key).Msg("snapshot unreadable, skipping write-back")
			continue
		}
		s.persist(ctx, key)
	}
	return s
}

func (s *Store) hydrate(ctx context.Context) map[string]storage.LoadResult {
	def := s.defaults()

	var results [5]storage.LoadResult
	s.hospitals, results[0] = storage.Load(ctx, s.adapter, storage.KeyHospitals, def.Hospitals)
	s.doctors, results[1] = storage.Load(ctx, s.adapter, storage.KeyDoctors, def.Doctors)
	s.appointments, results[2] = storage.Load(ctx, s.adapter, storage.KeyAppointments, def.Appointments)
	s.orders, results[3] = storage.Load(ctx, s.adapter, storage.KeyOrders, def.Orders)
	s.stores, results[4] = storage.Load(ctx, s.adapter, storage.KeyStores, def.Stores)

	s.logger.Info().
		Stringer("hospitals", results[0]).
		Stringer("doctors", results[1]).
		Stringer("appointments", results[2]).
		Stringer("orders", results[3]).
		Stringer("stores", results[4]).
		Msg("collections hydrated")

	return map[string]storage.LoadResult{
		storage.KeyHospitals:    results[0],
		storage.KeyDoctors:      results[1],
		storage.KeyAppointments: results[2],
		storage.KeyOrders:       results[3],
		storage.KeyStores:       results[4],
	}
}

// Subscribe registers fn to be called after every committed mutation
func (s *Store) Subscribe(fn func(Change)) {
	s.observersMu.Lock()
	defer s.observersMu.Unlock()
	s.observers = append(s.observers, fn)
}

func (s *Store) notify(c Change) {
	s.observersMu.RLock()
	observers := slices.Clone(s.observers)
	s.observersMu.RUnlock()

	for _, fn := range observers {
		fn(c)
	}
}

// BookAppointment issues the next token for doctorID's queue
func (s *Store) BookAppointment(ctx context.Context, patientName, doctorID, symptoms string) (models.Appointment, error) {
	s.mu.Lock()

	doctor, ok := s.doctorByID(doctorID)
	if !ok {
		s.mu.Unlock()
		return models.Appointment{}, fmt.Errorf("%w: %s", ErrDoctorNotFound, doctorID)
	}

	hospitalName := unknownHospitalName
	if hospital, ok := s.hospitalByID(doctor.HospitalID); ok {
		hospitalName = hospital.Name
	}

	now := s.clock()
	appointment := models.Appointment{
		ID:           s.ids.NewID("a"),
		TokenNumber:  s.nextToken(),
		PatientName:  patientName,
		DoctorName:   doctor.Name,
		HospitalName: hospitalName,
		Symptoms:     symptoms,
		Status:       models.AppointmentPending,
		Date:         now.UTC().Format(time.DateOnly),
		Time:         now.Format("03:04 PM"),
	}
	s.appointments = slices.Insert(s.appointments, 0, appointment)
	s.persist(ctx, storage.KeyAppointments)
	s.mu.Unlock()

	s.notify(Change{Collection: storage.KeyAppointments, Action: "booked", Record: appointment})
	return appointment, nil
}

func (s *Store) nextToken() int {
	if len(s.appointments) == 0 {
		return firstToken
	}
	highest := s.appointments[0].TokenNumber
	for _, a := range s.appointments[1:] {
		highest = max(highest, a.TokenNumber)
	}
	return highest + 1
}

// UpdateAppointmentStatus moves an appointment to status. A nil or empty
// diagnosis keeps the stored one.
func (s *Store) UpdateAppointmentStatus(ctx context.Context, id string, status models.AppointmentStatus, diagnosis *string) (models.Appointment, error) {
	s.mu.Lock()

	i := slices.IndexFunc(s.appointments, func(a models.Appointment) bool { return a.ID == id })
	if i < 0 {
		s.mu.Unlock()
		return models.Appointment{}, fmt.Errorf("%w: %s", ErrAppointmentNotFound, id)
	}
	if err := checkAppointmentTransition(s.appointments[i].Status, status); err != nil {
		s.mu.Unlock()
		return models.Appointment{}, err
	}

	s.appointments[i].Status = status
	if diagnosis != nil && *diagnosis != "" {
		s.appointments[i].Diagnosis = *diagnosis
	}
	updated := s.appointments[i]
	s.persist(ctx, storage.KeyAppointments)
	s.mu.Unlock()

	s.notify(Change{Collection: storage.KeyAppointments, Action: "status_changed", Record: updated})
	return updated, nil
}

// CreateOrder turns a prescription into a pending pharmacy order
func (s *Store) CreateOrder(ctx context.Context, appointmentID string, items []string, patientName string) (models.MedicineOrder, error) {
	s.mu.Lock()

	i := slices.IndexFunc(s.appointments, func(a models.Appointment) bool { return a.ID == appointmentID })
	if i < 0 {
		s.mu.Unlock()
		return models.MedicineOrder{}, fmt.Errorf("%w: %s", ErrAppointmentNotFound, appointmentID)
	}
	if patientName == "" {
		patientName = s.appointments[i].PatientName
	}

	ordered := slices.Clone(items)
	if ordered == nil {
		ordered = []string{}
	}
	order := models.MedicineOrder{
		ID:            s.ids.NewID("o"),
		AppointmentID: appointmentID,
		PatientName:   patientName,
		Items:         ordered,
		TotalAmount:   s.pricer.Price(ordered),
		Status:        models.OrderPending,
		Date:          s.clock().UTC().Format(time.DateOnly),
		Address:       s.addresses.Resolve(patientName),
	}
	s.orders = slices.Insert(s.orders, 0, order)
	s.persist(ctx, storage.KeyOrders)
	s.mu.Unlock()

	order.Items = slices.Clone(order.Items)
	s.notify(Change{Collection: storage.KeyOrders, Action: "created", Record: order})
	return order, nil
}

// UpdateOrderStatus advances an order along the fulfilment pipeline
func (s *Store) UpdateOrderStatus(ctx context.Context, id string, status models.OrderStatus) (models.MedicineOrder, error) {
	s.mu.Lock()

	i := slices.IndexFunc(s.orders, func(o models.MedicineOrder) bool { return o.ID == id })
	if i < 0 {
		s.mu.Unlock()
		return models.MedicineOrder{}, fmt.Errorf("%w: %s", ErrOrderNotFound, id)
	}
	if err := checkOrderTransition(s.orders[i].Status, status); err != nil {
		s.mu.Unlock()
		return models.MedicineOrder{}, err
	}

	s.orders[i].Status = status
	updated := cloneOrder(s.orders[i])
	s.persist(ctx, storage.KeyOrders)
	s.mu.Unlock()

	s.notify(Change{Collection: storage.KeyOrders, Action: "status_changed", Record: updated})
	return updated, nil
}

// AddHospital appends a hospital, filling admin-form defaults
func (s *Store) AddHospital(ctx context.Context, in models.HospitalInput) models.Hospital {
	hospital := models.Hospital{
		Name:            strings.TrimSpace(in.Name),
		Address:         in.Address,
		City:            in.City,
		Specializations: slices.Clone(in.Specializations),
		Rating:          in.Rating,
		TokensAvailable: defaultHospitalTokens,
		ImageURL:        in.ImageURL,
		WaitTime:        in.WaitTime,
	}
	if len(hospital.Specializations) == 0 {
		hospital.Specializations = []string{"General"}
	}
	if hospital.Rating == 0 {
		hospital.Rating = defaultHospitalRating
	}
	if hospital.WaitTime == "" {
		hospital.WaitTime = defaultHospitalWait
	}
	if hospital.ImageURL == "" {
		hospital.ImageURL = defaultHospitalImage
	}

	s.mu.Lock()
	hospital.ID = s.ids.NewID("h")
	s.hospitals = append(s.hospitals, hospital)
	s.persist(ctx, storage.KeyHospitals)
	s.mu.Unlock()

	hospital = cloneHospital(hospital)
	s.notify(Change{Collection: storage.KeyHospitals, Action: "added", Record: hospital})
	return hospital
}

// DeleteHospital removes a hospital. Doctors and appointments that mention it are left as they are.
func (s *Store) DeleteHospital(ctx context.Context, id string) error {
	s.mu.Lock()
	i := slices.IndexFunc(s.hospitals, func(h models.Hospital) bool { return h.ID == id })
	if i < 0 {
		s.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrHospitalNotFound, id)
	}
	removed := s.hospitals[i]
	s.hospitals = slices.Delete(s.hospitals, i, i+1)
	s.persist(ctx, storage.KeyHospitals)
	s.mu.Unlock()

	s.notify(Change{Collection: storage.KeyHospitals, Action: "deleted", Record: removed})
	return nil
}

// AddStore appends a medical store; it opens with a 4.0 rating unless told otherwise
func (s *Store) AddStore(ctx context.Context, in models.StoreInput) models.MedicalStore {
	medicalStore := models.MedicalStore{
		Name:    strings.TrimSpace(in.Name),
		Address: in.Address,
		Contact: in.Contact,
		Rating:  defaultStoreRating,
		IsOpen:  true,
	}
	if in.Rating != nil {
		medicalStore.Rating = *in.Rating
	}
	if in.IsOpen != nil {
		medicalStore.IsOpen = *in.IsOpen
	}

	s.mu.Lock()
	medicalStore.ID = s.ids.NewID("s")
	s.stores = append(s.stores, medicalStore)
	s.persist(ctx, storage.KeyStores)
	s.mu.Unlock()

	s.notify(Change{Collection: storage.KeyStores, Action: "added", Record: medicalStore})
	return medicalStore
}

func (s *Store) DeleteStore(ctx context.Context, id string) error {
	s.mu.Lock()
	i := slices.IndexFunc(s.stores, func(m models.MedicalStore) bool { return m.ID == id })
	if i < 0 {
		s.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrStoreNotFound, id)
	}
	removed := s.stores[i]
	s.stores = slices.Delete(s.stores, i, i+1)
	s.persist(ctx, storage.KeyStores)
	s.mu.Unlock()

	s.notify(Change{Collection: storage.KeyStores, Action: "deleted", Record: removed})
	return nil
}

func (s *Store) DoctorByID(id string) (models.Doctor, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.doctorByID(id)
}

func (s *Store) HospitalByID(id string) (models.Hospital, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	h, ok := s.hospitalByID(id)
	if !ok {
		return models.Hospital{}, false
	}
	return cloneHospital(h), true
}

func (s *Store) AppointmentByID(id string) (models.Appointment, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := slices.IndexFunc(s.appointments, func(a models.Appointment) bool { return a.ID == id })
	if i < 0 {
		return models.Appointment{}, false
	}
	return s.appointments[i], true
}

func (s *Store) doctorByID(id string) (models.Doctor, bool) {
	i := slices.IndexFunc(s.doctors, func(d models.Doctor) bool { return d.ID == id })
	if i < 0 {
		return models.Doctor{}, false
	}
	return s.doctors[i], true
}

func (s *Store) hospitalByID(id string) (models.Hospital, bool) {
	i := slices.IndexFunc(s.hospitals, func(h models.Hospital) bool { return h.ID == id })
	if i < 0 {
		return models.Hospital{}, false
	}
	return s.hospitals[i], true
}

func (s *Store) Hospitals() []models.Hospital {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneHospitals(s.hospitals)
}

func (s *Store) Doctors() []models.Doctor {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.doctors)
}

func (s *Store) Appointments() []models.Appointment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.appointments)
}

func (s *Store) Orders() []models.MedicineOrder {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneOrders(s.orders)
}

func (s *Store) Stores() []models.MedicalStore {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.stores)
}

// Snapshot copies all five collections under one read lock
func (s *Store) Snapshot() models.PortalSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return models.PortalSnapshot{
		Hospitals:    cloneHospitals(s.hospitals),
		Doctors:      slices.Clone(s.doctors),
		Appointments: slices.Clone(s.appointments),
		Orders:       cloneOrders(s.orders),
		Stores:       slices.Clone(s.stores),
	}
}

// Export renders the current collections as the backup document
func (s *Store) Export() ([]byte, error) {
	return s.adapter.ExportSnapshot(s.Snapshot())
}

// ExportFilename is the download name for Export output
func (s *Store) ExportFilename() string {
	return s.adapter.ExportFilename()
}

// Reset wipes every persisted snapshot and restarts from the default dataset
func (s *Store) Reset(ctx context.Context) error {
	s.mu.Lock()
	if err := s.adapter.Reset(ctx); err != nil {
		s.mu.Unlock()
		return err
	}
	def := s.defaults()
	s.hospitals = def.Hospitals
	s.doctors = def.Doctors
	s.appointments = def.Appointments
	s.orders = def.Orders
	s.stores = def.Stores
	clear(s.dirty)
	s.persistAll(ctx)
	s.mu.Unlock()

	s.logger.Warn().Msg("portal data reset to defaults")
	s.notify(Change{Collection: "*", Action: "reset", Record: ResetRecord{Collections: slices.Clone(collectionKeys)}})
	return nil
}

// Flush writes every collection marked dirty since the last flush
func (s *Store) Flush(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var errs []error
	for key := range s.dirty {
		if err := s.save(ctx, key); err != nil {
			errs = append(errs, err)
			continue
		}
		delete(s.dirty, key)
	}
	return errors.Join(errs...)
}

// Pending reports how many collections await a flush
func (s *Store) Pending() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.dirty)
}

// persist must be called with mu held
func (s *Store) persist(ctx context.Context, key string) {
	if s.async {
		s.dirty[key] = true
		return
	}
	if err := s.save(ctx, key); err != nil {
		s.logger.Error().Err(err).Str("collection", key).Msg("snapshot write failed")
	}
}

// save writes one collection. The in-memory mutation has already committed,
// so a cancelled request must not abort the write.
func (s *Store) save(ctx context.Context, key string) error {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), persistTimeout)
	defer cancel()
	return s.adapter.Save(ctx, key, s.collection(key))
}

func (s *Store) persistAll(ctx context.Context) {
	for _, key := range collectionKeys {
		s.persist(ctx, key)
	}
}

func (s *Store) collection(key string) any {
	switch key {
	case storage.KeyHospitals:
		return s.hospitals
	case storage.KeyDoctors:
		return s.doctors
	case storage.KeyAppointments:
		return s.appointments
	case storage.KeyOrders:
		return s.orders
	case storage.KeyStores:
		return s.stores
	}
	return nil
}

func cloneHospital(h models.Hospital) models.Hospital {
	h.Specializations = slices.Clone(h.Specializations)
	return h
}

func cloneHospitals(in []models.Hospital) []models.Hospital {
	out := make([]models.Hospital, len(in))
	for i, h := range in {
		out[i] = cloneHospital(h)
	}
	return out
}

func cloneOrder(o models.MedicineOrder) models.MedicineOrder {
	o.Items = slices.Clone(o.Items)
	return o
}

func cloneOrders(in []models.MedicineOrder) []models.MedicineOrder {
	out := make([]models.MedicineOrder, len(in))
	for i, o := range in {
		out[i] = cloneOrder(o)
	}
	return out
}
