package model

// All returns every table mapping in dependency order (parents before
// dependents), for the gen tool and for test schema setup.
func All() []any {
	return []any{
		GatewayModel{},
		SensorTypeModel{},
		UserModel{},
		ResourceModel{},
		FanModel{},
		ButtonModel{},
		LedModel{},
		BuzzerModel{},
		MotionModel{},
		GasModel{},
		TemperatureModel{},
		RgbledModel{},
		IlluminanceModel{},
		SolarModel{},
		PowerModel{},
		EnergyModel{},
		EventLogModel{},
		SmsHistoryModel{},
	}
}
