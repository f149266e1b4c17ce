package repository

// Embedded 2015-2024 historical estimates, used when no raw CSV files are
// present and written out by Seed.

var defaultGlobalRows = []globalMarketRow{
	{Year: 2015, GlobalMarketSize: 24.8, IndustrialRobots: 18.5, ServiceRobots: 3.2, MedicalRobots: 1.8, AgriculturalRobots: 1.3},
	{Year: 2016, GlobalMarketSize: 27.4, IndustrialRobots: 20.2, ServiceRobots: 3.8, MedicalRobots: 2.1, AgriculturalRobots: 1.3},
	{Year: 2017, GlobalMarketSize: 31.1, IndustrialRobots: 22.8, ServiceRobots: 4.5, MedicalRobots: 2.4, AgriculturalRobots: 1.4},
	{Year: 2018, GlobalMarketSize: 34.8, IndustrialRobots: 25.1, ServiceRobots: 5.2, MedicalRobots: 2.8, AgriculturalRobots: 1.7},
	{Year: 2019, GlobalMarketSize: 38.2, IndustrialRobots: 27.3, ServiceRobots: 6.1, MedicalRobots: 3.2, AgriculturalRobots: 1.6},
	{Year: 2020, GlobalMarketSize: 42.5, IndustrialRobots: 30.2, ServiceRobots: 7.3, MedicalRobots: 3.6, AgriculturalRobots: 1.4},
	{Year: 2021, GlobalMarketSize: 47.8, IndustrialRobots: 33.8, ServiceRobots: 8.5, MedicalRobots: 4.1, AgriculturalRobots: 1.4},
	{Year: 2022, GlobalMarketSize: 55.3, IndustrialRobots: 38.9, ServiceRobots: 10.1, MedicalRobots: 4.7, AgriculturalRobots: 1.6},
	{Year: 2023, GlobalMarketSize: 63.2, IndustrialRobots: 44.2, ServiceRobots: 12.0, MedicalRobots: 5.3, AgriculturalRobots: 1.7},
	{Year: 2024, GlobalMarketSize: 70.5, IndustrialRobots: 49.1, ServiceRobots: 13.8, MedicalRobots: 6.0, AgriculturalRobots: 1.6},
}

var defaultRegionalRows = []regionalMarketRow{
	{Year: 2015, China: 6.8, Japan: 4.2, SouthKorea: 2.1, Germany: 2.8, USA: 3.5, RestOfWorld: 5.4},
	{Year: 2016, China: 8.2, Japan: 4.5, SouthKorea: 2.3, Germany: 3.0, USA: 3.8, RestOfWorld: 5.6},
	{Year: 2017, China: 10.1, Japan: 4.8, SouthKorea: 2.5, Germany: 3.2, USA: 4.1, RestOfWorld: 5.9},
	{Year: 2018, China: 12.3, Japan: 5.1, SouthKorea: 2.7, Germany: 3.4, USA: 4.4, RestOfWorld: 6.3},
	{Year: 2019, China: 14.5, Japan: 5.4, SouthKorea: 2.9, Germany: 3.6, USA: 4.7, RestOfWorld: 6.7},
	{Year: 2020, China: 16.8, Japan: 5.7, SouthKorea: 3.1, Germany: 3.8, USA: 5.0, RestOfWorld: 7.1},
	{Year: 2021, China: 19.5, Japan: 6.0, SouthKorea: 3.3, Germany: 4.0, USA: 5.4, RestOfWorld: 7.6},
	{Year: 2022, China: 22.8, Japan: 6.4, SouthKorea: 3.5, Germany: 4.3, USA: 5.8, RestOfWorld: 8.2},
	{Year: 2023, China: 26.5, Japan: 6.8, SouthKorea: 3.7, Germany: 4.6, USA: 6.2, RestOfWorld: 8.8},
	{Year: 2024, China: 29.8, Japan: 7.2, SouthKorea: 3.9, Germany: 4.9, USA: 6.6, RestOfWorld: 9.5},
}

var defaultInstallationsRows = []installationsRow{
	{Year: 2015, GlobalInstallations: 254, ChinaInstallations: 68, IndustrialInstallations: 253, ServiceInstallations: 5.4},
	{Year: 2016, GlobalInstallations: 294, ChinaInstallations: 87, IndustrialInstallations: 293, ServiceInstallations: 6.7},
	{Year: 2017, GlobalInstallations: 340, ChinaInstallations: 138, IndustrialInstallations: 339, ServiceInstallations: 8.2},
	{Year: 2018, GlobalInstallations: 381, ChinaInstallations: 154, IndustrialInstallations: 380, ServiceInstallations: 10.1},
	{Year: 2019, GlobalInstallations: 422, ChinaInstallations: 181, IndustrialInstallations: 421, ServiceInstallations: 12.5},
	{Year: 2020, GlobalInstallations: 465, ChinaInstallations: 194, IndustrialInstallations: 464, ServiceInstallations: 15.3},
	{Year: 2021, GlobalInstallations: 517, ChinaInstallations: 214, IndustrialInstallations: 516, ServiceInstallations: 18.7},
	{Year: 2022, GlobalInstallations: 553, ChinaInstallations: 268, IndustrialInstallations: 552, ServiceInstallations: 22.4},
	{Year: 2023, GlobalInstallations: 610, ChinaInstallations: 290, IndustrialInstallations: 609, ServiceInstallations: 26.8},
	{Year: 2024, GlobalInstallations: 680, ChinaInstallations: 320, IndustrialInstallations: 679, ServiceInstallations: 31.5},
}
