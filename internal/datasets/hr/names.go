package hr

// maleFirstNames are common Egyptian male given names.
var maleFirstNames = []string{
	"Ahmed", "Mohamed", "Mahmoud", "Ali", "Omar", "Youssef", "Karim", "Hassan",
	"Hussein", "Ibrahim", "Tarek", "Amr", "Khaled", "Mostafa", "Abdelrahman",
	"Yasser", "Samir", "Hany", "Adel", "Nabil", "Sayed", "Wael", "Walid",
	"Fahmy", "Ramy", "Sherif", "Essam", "Maged", "Ayman", "Moustafa", "Hisham",
	"Ziad", "Tamer", "Sami", "Gamal", "Ashraf", "Hatem", "Reda", "Mazen",
	"Bassem", "Emad", "Osama", "Rafat", "Nader", "Fouad", "Ezzat", "Ahmad",
	"Abdullah", "Saad", "Saeed", "Salam", "Shawky", "Sobhy", "Talaat", "Wagih",
	"Zakaria", "Zayed", "Zain", "Zakariya", "Raafat", "Raed", "Raouf", "Rashad",
	"Rasheed", "Salah", "Sameh", "Samy", "Shady", "Shafik", "Sharif", "Tawfik",
	"Yahya", "Yasin", "Yehia", "Zuhair", "Abdelaziz", "Abdelhameed",
	"Abdelhamid", "Abdelkareem", "Abdellatif", "Abdelmonem", "Abdelnabi",
	"Abdelsalam", "Abdelwahab", "Bakr", "Diaa", "Ehab", "Fathy", "Hafez",
	"Hazem", "Helmy", "Hossam", "Ismail", "Kareem", "Maher", "Mamdouh",
	"Mansour", "Medhat", "Mokhtar", "Montasser", "Mounir", "Naguib", "Nasser",
	"Othman", "Qasim", "Ragab", "Rizk", "Saif", "Seif", "Shams", "Taher",
	"Waleed", "Younes",
}

// femaleFirstNames are common Egyptian female given names.
var femaleFirstNames = []string{
	"Fatima", "Aisha", "Mariam", "Nour", "Layla", "Yasmin", "Hana", "Nada",
	"Sara", "Menna", "Shaimaa", "Dina", "Nourhan", "Salma", "Rania", "Noha",
	"Manal", "Heba", "Mona", "Nagwa", "Samira", "Amina", "Zeinab", "Safia",
	"Amira", "Ghada", "Riham", "Eman", "Rasha", "Nesma", "Hind", "Farida",
	"Sawsan", "Lobna", "Mai", "Asmaa", "Nadia", "Inas", "Randa", "Faten",
	"Nihal", "Rawan", "Hanan", "Shaymaa", "Dalia", "Sabah", "Hala", "Aya",
	"Jannah", "Jana", "Lina", "Noor", "Malak", "Yara", "Nouran", "Rahma",
	"Reem", "Somaia", "Wafaa", "Warda", "Yomna", "Zainab", "Zahra", "Zubaida",
	"Amal", "Azza", "Basma", "Buthaina", "Dunya", "Ebtisam", "Enas", "Farah",
	"Ghina", "Habiba", "Haneen", "Hoda", "Iman", "Iqbal", "Jamila", "Kawkab",
	"Khadija", "Lama", "Layan", "Maha", "Maram", "Maysa", "Mervat", "Najwa",
	"Nashwa", "Nawal", "Ragaa", "Rahaf", "Rehab", "Rola", "Sahar", "Sajida",
	"Sameera", "Shorouk", "Suhair", "Suhaila", "Tahani", "Widad", "Yasmeen",
	"Zeina", "Zohra", "Zain", "Nayera", "Salwa", "Fawzia", "Nivin", "Sondos",
	"Doaa", "Raneem", "Alia", "Intisar", "Nermeen",
}

// lastNames mixes common Muslim, Coptic and regional Egyptian family names.
var lastNames = []string{
	"Abdelaziz", "Abdelrahman", "Abdelsalam", "Abdelhakim", "Abdelfattah",
	"Abdelnasser", "Abdelkader", "Abdelsayed", "Abdelmeguid", "Abdelghani",
	"Abdelwahab", "Abdelhalim", "Abdelmonem", "Abdellatif", "Abdelnabi",
	"Abdelkareem", "Abdelhamid", "Abdelhameed", "Hassan", "Hussein", "Mohamed",
	"Ahmed", "Mahmoud", "Ali", "Ibrahim", "Khalil", "Sayed", "Fouad", "Gomaa",
	"Elsayed", "Elshafei", "Elbaz", "Elnaggar", "Elmasry", "Eltawil", "Elgendy",
	"Elkholy", "Elbanna", "Elhennawy", "Elgindy", "Elbeshbishy", "Elgammal",
	"Elhamy", "Elkaramany", "Elkafrawy", "Elmaghraby", "Elmorshedy", "Elmorsi",
	"Elshenawy", "Elzayat", "Elzahaby", "Elkhateeb", "Elkady", "Elzomor",
	"Elghobashy", "Elsheikh", "Elbesh", "Eldeeb", "Elhadidi", "Elhaddad",
	"Elkhouly", "Elleithy", "Elmaaty", "Elmansy", "Elmesmary", "Elrefaey",
	"Elsherbiny", "Elsonbati", "Elwakil", "Elzohairy", "Samir", "Tawfik",
	"Zaki", "Nassar", "Wahba", "Hafez", "Gad", "Rashad", "Shaker", "Soliman",
	"Talaat", "Zaydan", "Mekawy", "Morsy", "Nabil", "Fahmy", "Rizk", "Saeed",
	"Shawky", "Tarek", "Wagih", "Youssef", "Zarif", "Zayed", "Badawy",
	"Barakat", "Dawood", "Fathy", "Farag", "Hanna", "Kamal", "Mansour", "Nagy",
	"Sobhy", "Tadros", "Wassef", "Yacoub", "Zekry", "Ashraf", "Gamil", "Hefny",
	"Helmy", "Khattab", "Labib", "Makram", "Moussa", "Naeem", "Nosseir",
	"Qassem", "Ragab", "Saad", "Sadek", "Sallam", "Sharaf", "Shehata",
	"Sleiman", "Tamim", "Zayan", "Zohny", "Zidan", "Zogby", "Abdelmalek",
	"Atiya", "Boulos", "Butros", "Dawoud", "Ebeid", "Fahim", "George", "Girgis",
	"Habib", "Iskander", "Kyrollos", "Malak", "Mikhail", "Moftah", "Nakhla",
	"Nasr", "Philo", "Rizkallah", "Said", "Selim", "Wadie", "Zakhary",
	"Zakaria", "Abraam", "Antoun", "Bahgat", "Basily", "Bishay", "Boutros",
	"Elias", "Faragallah", "Gabriel", "Henein", "Kyrillos", "Makary", "Mina",
	"Mokhtar", "Nashed", "Rafla", "Sargious", "Takla", "Agmy", "Barsoum",
	"Coptic", "Ezzat", "Heneidy", "Mikhael", "Neseem", "Shenouda", "Theodor",
	"Wissa", "Zakariya", "Abu el-Ela", "Abu Zeid", "Alaa el-Din", "Badr",
	"Desouki", "El-Alfi", "El-Araby", "El-Assal", "El-Bahnasawy",
	"El-Demerdash", "El-Din", "El-Fakharany", "El-Gammal", "El-Gohary",
	"El-Hadidy", "El-Hennawy", "El-Kerdany", "El-Khayyat", "El-Kordy",
	"El-Mahdy", "El-Masry", "El-Messiry", "El-Mohandes", "El-Nahas", "El-Omari",
	"El-Qasabi", "El-Rashidy", "El-Sawy", "El-Sebaey", "El-Sherbiny",
	"El-Tabei", "El-Taher", "El-Wakil", "El-Zanaty", "Haggag", "Hammad",
	"Helal", "Kassem", "Mahrous", "Mansy", "Masoud", "Metwally", "Nour el-Din",
	"Qandil", "Rady", "Ramadan", "Saqr", "Shams el-Din", "Siddiq", "Tawfiq",
	"Wagdy", "Zaghloul", "Zeidan",
}
