package domain

import "time"

// DemoTickets returns the fixed dataset used when the backend has never been
// reached. Each call returns a fresh copy.
func DemoTickets() []Ticket {
	return []Ticket{
		{
			ID:                 1,
			CustomerName:       "María González",
			Phone:              "+56 9 1234 5678",
			Email:              "maria.gonzalez@email.com",
			DeviceType:         "Smartphone",
			Brand:              "Samsung",
			Model:              "Galaxy S21",
			ProblemDescription: "Pantalla rota después de una caída",
			Status:             StatusScheduled,
			Priority:           PriorityHigh,
			ScheduledAt:        demoTime(2025, 6, 25, 14, 0),
			CreatedAt:          demoTime(2025, 6, 24, 10, 30),
			ElapsedDays:        1,
			Technician:         "Juan Pérez",
			EstimatedCost:      demoCost(85000),
		},
		{
			ID:                 2,
			CustomerName:       "Carlos Rodríguez",
			Phone:              "+56 9 8765 4321",
			Email:              "carlos.rodriguez@email.com",
			DeviceType:         "Laptop",
			Brand:              "HP",
			Model:              "Pavilion 15",
			ProblemDescription: "No enciende, posible problema con la fuente de poder",
			Status:             StatusInRepair,
			Priority:           PriorityNormal,
			ScheduledAt:        demoTime(2025, 6, 24, 9, 0),
			CreatedAt:          demoTime(2025, 6, 23, 16, 45),
			ElapsedDays:        2,
			Technician:         "Ana López",
			EstimatedCost:      demoCost(45000),
		},
		{
			ID:                 3,
			CustomerName:       "Sofía Martínez",
			Phone:              "+56 9 5555 6666",
			Email:              "sofia.martinez@email.com",
			DeviceType:         "Tablet",
			Brand:              "iPad",
			Model:              "Air 4",
			ProblemDescription: "Batería se agota muy rápido",
			Status:             StatusCompleted,
			Priority:           PriorityLow,
			ScheduledAt:        demoTime(2025, 6, 22, 11, 0),
			CreatedAt:          demoTime(2025, 6, 21, 14, 20),
			ElapsedDays:        3,
			Technician:         "Pedro Sánchez",
			EstimatedCost:      demoCost(65000),
		},
	}
}

func demoTime(year int, month time.Month, day, hour, minute int) time.Time {
	return time.Date(year, month, day, hour, minute, 0, 0, time.UTC)
}

func demoCost(v float64) *float64 {
	return &v
}
