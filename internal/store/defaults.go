package store

import "arogya360-portal/internal/models"

// DefaultData is the demo dataset a fresh or reset portal starts from
func DefaultData() models.PortalSnapshot {
	return models.PortalSnapshot{
		Hospitals: []models.Hospital{
			{
				ID:              "h1",
				Name:            "Lilavati Multispeciality Hospital",
				Address:         "A-791, Bandra Reclamation",
				City:            "Mumbai",
				Specializations: []string{"Cardiology", "Orthopedics", "General"},
				Rating:          4.8,
				TokensAvailable: 12,
				ImageURL:        "https://picsum.photos/seed/h1/400/300",
				WaitTime:        "20 mins",
			},
			{
				ID:              "h2",
				Name:            "Sanjeevani Care Centre",
				Address:         "14 MG Road",
				City:            "Pune",
				Specializations: []string{"Pediatrics", "Dermatology"},
				Rating:          4.5,
				TokensAvailable: 30,
				ImageURL:        "https://picsum.photos/seed/h2/400/300",
				WaitTime:        "10 mins",
			},
			{
				ID:              "h3",
				Name:            "Dhanvantari Neuro Institute",
				Address:         "22 Residency Road",
				City:            "Bengaluru",
				Specializations: []string{"Neurology", "General"},
				Rating:          4.6,
				TokensAvailable: 8,
				ImageURL:        "https://picsum.photos/seed/h3/400/300",
				WaitTime:        "35 mins",
			},
		},
		Doctors: []models.Doctor{
			{ID: "d1", Name: "Dr. Anjali Mehta", Specialization: "Cardiology", HospitalID: "h1"},
			{ID: "d2", Name: "Dr. Rohan Kulkarni", Specialization: "Orthopedics", HospitalID: "h1"},
			{ID: "d3", Name: "Dr. Priya Nair", Specialization: "Pediatrics", HospitalID: "h2"},
			{ID: "d4", Name: "Dr. Vikram Rao", Specialization: "Neurology", HospitalID: "h3"},
		},
		Appointments: []models.Appointment{
			{
				ID:           "a2",
				TokenNumber:  102,
				PatientName:  "Sneha Patil",
				DoctorName:   "Dr. Priya Nair",
				HospitalName: "Sanjeevani Care Centre",
				Symptoms:     "Persistent cough in child, mild fever",
				Status:       models.AppointmentPending,
				Date:         "2025-01-15",
				Time:         "11:00 AM",
			},
			{
				ID:           "a1",
				TokenNumber:  101,
				PatientName:  "Rahul Sharma",
				DoctorName:   "Dr. Anjali Mehta",
				HospitalName: "Lilavati Multispeciality Hospital",
				Symptoms:     "Chest tightness after exertion",
				Status:       models.AppointmentCompleted,
				Diagnosis:    "Stable angina, lifestyle changes advised",
				Date:         "2025-01-14",
				Time:         "10:30 AM",
			},
		},
		Orders: []models.MedicineOrder{
			{
				ID:            "o1",
				AppointmentID: "a1",
				PatientName:   "Rahul Sharma",
				Items:         []string{"Aspirin 75mg", "Atorvastatin 10mg"},
				TotalAmount:   480,
				Status:        models.OrderPacked,
				Date:          "2025-01-14",
				Address:       string(DefaultDeliveryAddress),
			},
		},
		Stores: []models.MedicalStore{
			{ID: "s1", Name: "Wellness Forever", Address: "Linking Road, Bandra", Contact: "+91 98200 11223", Rating: 4.4, IsOpen: true},
			{ID: "s2", Name: "Apna Chemist", Address: "FC Road, Pune", Contact: "+91 98900 44556", Rating: 4.1, IsOpen: false},
		},
	}
}

// EmptyData starts every collection empty
func EmptyData() models.PortalSnapshot {
	return models.PortalSnapshot{
		Hospitals:    []models.Hospital{},
		Doctors:      []models.Doctor{},
		Appointments: []models.Appointment{},
		Orders:       []models.MedicineOrder{},
		Stores:       []models.MedicalStore{},
	}
}
