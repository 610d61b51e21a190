package shared

import "foodi/internal/domain"

// RestaurantSeeds is the built-in Jerusalem catalog loaded by cmd/seeder.
var RestaurantSeeds = []domain.RestaurantSeed{
	{Name: "נאיה", Type: "אסייתי", Lat: 31.772836, Lon: 35.192510},
	{Name: "מינאטו", Type: "אסייתי", Lat: 31.780541, Lon: 35.219102},
	{Name: "שיסו", Type: "אסייתי", Lat: 31.780010, Lon: 35.214882},
	{Name: "טטאמי", Type: "אסייתי", Lat: 31.770412, Lon: 35.215991},
	{Name: "סושי רחביה", Type: "אסייתי", Lat: 31.774431, Lon: 35.212731},
	{Name: "מנדרין", Type: "אסייתי", Lat: 31.782111, Lon: 35.216442},
	{Name: "ג'וי", Type: "אסייתי", Lat: 31.776900, Lon: 35.214100},
	{Name: "ריבר נודלס בר", Type: "אסייתי", Lat: 31.778800, Lon: 35.215300},
	{Name: "יאקימונו", Type: "אסייתי", Lat: 31.781214, Lon: 35.216114},
	{Name: "פאן אסיה", Type: "אסייתי", Lat: 31.777914, Lon: 35.214714},
	{Name: "ווק רום", Type: "אסייתי", Lat: 31.776214, Lon: 35.213514},
	{Name: "נודלה האוס", Type: "אסייתי", Lat: 31.779214, Lon: 35.215214},
	{Name: "לוצ'נה", Type: "איטלקי", Lat: 31.780904, Lon: 35.220143},
	{Name: "רוזה", Type: "איטלקי", Lat: 31.782590, Lon: 35.219890},
	{Name: "פיקולינו", Type: "איטלקי", Lat: 31.776900, Lon: 35.225200},
	{Name: "פיאנו פקטורי", Type: "איטלקי", Lat: 31.771300, Lon: 35.219000},
	{Name: "בלייז פיצה", Type: "איטלקי", Lat: 31.774912, Lon: 35.219411},
	{Name: "פיצה פיציקטו", Type: "איטלקי", Lat: 31.783144, Lon: 35.213774},
	{Name: "פיצה רומא", Type: "איטלקי", Lat: 31.779212, Lon: 35.222014},
	{Name: "פיצה מייקל", Type: "איטלקי", Lat: 31.790114, Lon: 35.205881},
	{Name: "פיצה ביג מאמא", Type: "איטלקי", Lat: 31.788211, Lon: 35.207114},
	{Name: "קפה רימון", Type: "איטלקי", Lat: 31.776812, Lon: 35.224812},
	{Name: "קפה קדוש", Type: "איטלקי", Lat: 31.778214, Lon: 35.216214},
	{Name: "לחם ארז", Type: "איטלקי", Lat: 31.785114, Lon: 35.216114},
	{Name: "מחניודה", Type: "בשרים", Lat: 31.785720, Lon: 35.212320},
	{Name: "אנג'ליקה", Type: "בשרים", Lat: 31.776900, Lon: 35.222300},
	{Name: "בירנבאום", Type: "בשרים", Lat: 31.778322, Lon: 35.221998},
	{Name: "הדקל 3", Type: "בשרים", Lat: 31.783210, Lon: 35.218450},
	{Name: "שירת הבשר", Type: "בשרים", Lat: 31.773884, Lon: 35.214913},
	{Name: "אנטריקוטי", Type: "בשרים", Lat: 31.777114, Lon: 35.219903},
	{Name: "חצות", Type: "בשרים", Lat: 31.785900, Lon: 35.211400},
	{Name: "M25", Type: "בשרים", Lat: 31.785200, Lon: 35.212000},
	{Name: "צדקיהו", Type: "בשרים", Lat: 31.751900, Lon: 35.215400},
	{Name: "עזרא", Type: "בשרים", Lat: 31.789900, Lon: 35.213900},
	{Name: "אנג'ליקה ביסטרו", Type: "בשרים", Lat: 31.776714, Lon: 35.222514},
	{Name: "לחיים גריל", Type: "בשרים", Lat: 31.783811, Lon: 35.221701},
	{Name: "אגאדיר", Type: "המבורגר", Lat: 31.777420, Lon: 35.219870},
	{Name: "בלאק ירושלים", Type: "המבורגר", Lat: 31.775650, Lon: 35.213980},
	{Name: "גולדיס", Type: "המבורגר", Lat: 31.794412, Lon: 35.205411},
	{Name: "סולומונס", Type: "המבורגר", Lat: 31.785212, Lon: 35.211932},
	{Name: "BBB ירושלים", Type: "המבורגר", Lat: 31.776700, Lon: 35.214300},
	{Name: "בורגר רום", Type: "המבורגר", Lat: 31.777114, Lon: 35.213114},
	{Name: "המבורגר פריים", Type: "המבורגר", Lat: 31.781778, Lon: 35.219821},
	{Name: "בורגר האוס", Type: "המבורגר", Lat: 31.782211, Lon: 35.218114},
	{Name: "עזורה", Type: "מזרחי", Lat: 31.785500, Lon: 35.212600},
	{Name: "אימא", Type: "מזרחי", Lat: 31.785100, Lon: 35.212900},
	{Name: "חומוס בן סירא", Type: "מזרחי", Lat: 31.777300, Lon: 35.213700},
	{Name: "אבו שוקרי", Type: "מזרחי", Lat: 31.778900, Lon: 35.234400},
	{Name: "פיירוז", Type: "מזרחי", Lat: 31.776300, Lon: 35.229200},
	{Name: "אקליפטוס", Type: "מזרחי", Lat: 31.778612, Lon: 35.229714},
	{Name: "מסעדת מימון", Type: "מזרחי", Lat: 31.786714, Lon: 35.213114},
	{Name: "טלה", Type: "מזרחי", Lat: 31.779314, Lon: 35.212714},
	{Name: "בולגורג'י", Type: "מזרחי", Lat: 31.779914, Lon: 35.213314},
	{Name: "תמול שלשום", Type: "בית קפה", Lat: 31.778400, Lon: 35.215200},
	{Name: "נוקטורנו", Type: "בית קפה", Lat: 31.778000, Lon: 35.214400},
	{Name: "מונה", Type: "בר-מסעדה", Lat: 31.779600, Lon: 35.217800},
	{Name: "אדום", Type: "בר-מסעדה", Lat: 31.779200, Lon: 35.217300},
	{Name: "Chakra", Type: "בר-מסעדה", Lat: 31.780200, Lon: 35.218200},
	{Name: "Satya", Type: "בר-מסעדה", Lat: 31.780900, Lon: 35.217900},
	{Name: "Sarwa", Type: "בר-מסעדה", Lat: 31.781114, Lon: 35.214914},
	{Name: "Reshta", Type: "בר-מסעדה", Lat: 31.779914, Lon: 35.213714},
	{Name: "Beer Bazaar", Type: "בר-מסעדה", Lat: 31.785214, Lon: 35.212914},
	{Name: "Modern (מוזיאון ישראל)", Type: "בר-מסעדה", Lat: 31.772514, Lon: 35.204114},
	{Name: "02", Type: "בר-מסעדה", Lat: 31.770914, Lon: 35.222514},
	{Name: "Happy Fish", Type: "בר-מסעדה", Lat: 31.776882, Lon: 35.224911},
	{Name: "Seoul House", Type: "אסייתי", Lat: 31.777900, Lon: 35.214900},
	{Name: "Asia Station", Type: "אסייתי", Lat: 31.781500, Lon: 35.217200},
	{Name: "Tokyo Sushi Bar", Type: "אסייתי", Lat: 31.774900, Lon: 35.212900},
	{Name: "Ninja Ramen", Type: "אסייתי", Lat: 31.778200, Lon: 35.215900},
	{Name: "Pomo", Type: "איטלקי", Lat: 31.779800, Lon: 35.218200},
	{Name: "Luciana Cafe", Type: "איטלקי", Lat: 31.780450, Lon: 35.220210},
	{Name: "Pizza Toscana", Type: "איטלקי", Lat: 31.774211, Lon: 35.211914},
	{Name: "Pizza Napoli", Type: "איטלקי", Lat: 31.778900, Lon: 35.214200},
	{Name: "Cafe Greg Cinema City", Type: "איטלקי", Lat: 31.751900, Lon: 35.204800},
	{Name: "לחיים בשר", Type: "בשרים", Lat: 31.783600, Lon: 35.221500},
	{Name: "המעשנה הירושלמית", Type: "בשרים", Lat: 31.781900, Lon: 35.214500},
	{Name: "שגב", Type: "בשרים", Lat: 31.779900, Lon: 35.216700},
	{Name: "בשר בר", Type: "בשרים", Lat: 31.777400, Lon: 35.214400},
	{Name: "האטליז", Type: "בשרים", Lat: 31.785400, Lon: 35.212100},
	{Name: "גריל מרקט", Type: "בשרים", Lat: 31.785000, Lon: 35.211800},
	{Name: "מוזס ירושלים", Type: "המבורגר", Lat: 31.776600, Lon: 35.214600},
	{Name: "Burger Bar", Type: "המבורגר", Lat: 31.777800, Lon: 35.213900},
	{Name: "Iwo’s Meatburger", Type: "המבורגר", Lat: 31.779900, Lon: 35.215100},
	{Name: "Meat Point Burger", Type: "המבורגר", Lat: 31.781100, Lon: 35.219200},
	{Name: "לינא", Type: "מזרחי", Lat: 31.778600, Lon: 35.234600},
	{Name: "נאפורא", Type: "מזרחי", Lat: 31.779400, Lon: 35.233800},
	{Name: "אבו עלי", Type: "מזרחי", Lat: 31.776800, Lon: 35.229900},
	{Name: "Bulghourji", Type: "מזרחי", Lat: 31.779700, Lon: 35.213200},
	{Name: "Khan Restaurant", Type: "מזרחי", Lat: 31.770600, Lon: 35.222200},
	{Name: "Cafe Shelomo", Type: "בית קפה", Lat: 31.778900, Lon: 35.214900},
	{Name: "Cafe Nadi", Type: "בית קפה", Lat: 31.779200, Lon: 35.215100},
	{Name: "Fringe", Type: "בית קפה", Lat: 31.780100, Lon: 35.217100},
	{Name: "Talbiya", Type: "בר-מסעדה", Lat: 31.779300, Lon: 35.217400},
	{Name: "Greek Salon Jerusalem", Type: "בר-מסעדה", Lat: 31.780900, Lon: 35.217900},
	{Name: "Touro", Type: "בר-מסעדה", Lat: 31.771200, Lon: 35.223400},
	{Name: "David 16", Type: "בר-מסעדה", Lat: 31.777900, Lon: 35.224300},
}
