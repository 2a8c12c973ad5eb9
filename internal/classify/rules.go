package classify

// Category labels form a closed set; the catalog references categories by
// these exact names.
const (
	LabelCosmetics   = "Kozmetik & Parfüm"
	LabelPersonal    = "Kişisel Bakım"
	LabelCleaning    = "Temizlik Ürünleri"
	LabelStaples     = "Temel Gıda"
	LabelSnacks      = "Atıştırmalık & Tatlı"
	LabelBeverages   = "İçecekler"
	LabelBaby        = "Bebek & Çocuk"
	LabelPet         = "Evcil Hayvan Ürünleri"
	LabelClothing    = "Giyim & Aksesuar"
	LabelElectronics = "Elektronik & Aksesuar"
	LabelKitchen     = "Mutfak & Sofra"
	LabelAppliances  = "Ev Aletleri"
	LabelHome        = "Ev & Dekorasyon"
	LabelStationery  = "Kırtasiye & Ofis"
	LabelAuto        = "Oto & Araç"
	LabelToys        = "Oyuncak & Hobi"
	LabelHealth      = "Sağlık & Medikal"
	LabelBags        = "Çanta & Seyahat"
	LabelGarden      = "Bahçe & Bahçe Ürünleri"
	LabelAccessories = "Aksesuarlar & Küçük Eşyalar"
	LabelSports      = "Spor & Dış Mekan"
	LabelDIY         = "Bakım & Onarım (DIY)"
	LabelOther       = "Diğer Ürünler"
)

// Rule binds a category label to the keywords that vote for it. The slice
// order is significant: it is the tie-break between equally scored labels,
// first declared wins.
type Rule struct {
	Label    string
	Keywords []string
}

// DefaultRules is the production keyword table. Keywords are lowercase and
// matched against lowercased titles only.
var DefaultRules = []Rule{
	{LabelCosmetics, []string{"kolonya", "parfüm", "parfum", "edt", "edp", "eau de parfum", "eau de toilette", "koku"}},
	{LabelPersonal, []string{"sabun", "şampuan", "duş jeli", "tıraş", "traş", "deodorant", "vücut losyonu", "diş macunu", "diş fırçası", "kulak çubuğu", "krem", "maske"}},
	{LabelCleaning, []string{"çamaşır suyu", "deterjan", "bulaşık", "temizlik", "dezenfektan", "temizleyici", "süpürge", "mop", "mikrofiber", "lavabo"}},
	{LabelStaples, []string{"süt", "yumurta", "peynir", "zeytin", "ekmek", "un", "şeker", "yağ", "pirinç", "makarna", "konserve", "reçel", "bal", "pekmez", "tuz"}},
	{LabelSnacks, []string{"bisküvi", "çikolata", "kraker", "kek", "kuruyemiş", "lokum", "gofret", "kraker", "çerez", "bar"}},
	{LabelBeverages, []string{"su", "cola", "gazlı", "limonata", "soda", "meyve suyu", "ice tea", "çay", "kahve", "enerji içecek"}},
	{LabelBaby, []string{"bebek", "mama", "bebelac", "aptamil", "biberon", "emzik", "bez", "ıslak mendil", "bebek bezi"}},
	{LabelPet, []string{"kedi maması", "köpek maması", "kedi", "köpek", "pet", "kedi maması", "köpek maması", "kafes", "kedi kumu"}},
	{LabelClothing, []string{"terlik", "ayakkabı", "çorap", "gömlek", "pantolon", "tshirt", "etek", "elbise", "mont", "şapka", "çanta", "kemer"}},
	{LabelElectronics, []string{"telefon", "usb", "şarj", "kablo", "kulaklık", "powerbank", "laptop", "bilgisayar", "adaptör", "şarj aleti", "iphone", "android"}},
	{LabelKitchen, []string{"tencere", "tabak", "kaşık", "çatal", "bıçak", "kupa", "bardak", "tava", "mutfak", "baharatlık", "saklama kabı", "render", "rende"}},
	{LabelAppliances, []string{"fırın", "mikrodalga", "ütü", "süpürge", "aspiratör", "çamaşır makinesi", "buzdolabı", "klima"}},
	{LabelHome, []string{"masa", "sandalye", "dolap", "raf", "sehpa", "mobilya", "halı", "perde", "yastık", "battaniye", "nevresim", "saksı"}},
	{LabelStationery, []string{"kalem", "defter", "kağıt", "dosya", "yapıştırıcı", "zımba", "ofis", "etiket", "mühür"}},
	{LabelAuto, []string{"araba", "araç", "yağ", "cam suyu", "antifriz", "oto", "lastik", "akü", "oto yedek"}},
	{LabelToys, []string{"oyuncak", "lego", "puzzle", "top", "oyun hamuru", "hobi", "model"}},
	{LabelHealth, []string{"ilaç", "vitamin", "takviye", "bandaj", "şurup", "ağrı kesici", "plaster", "medikal"}},
	{LabelBags, []string{"çanta", "valiz", "bavul", "sırt çantası", "cüzdan"}},
	{LabelGarden, []string{"çiçek", "tohum", "bitki", "toprak", "bahçe", "saksı", "gübre"}},
	{LabelAccessories, []string{"çakmak", "kül tabak", "küllük", "anahtarlık", "kupa"}},
	{LabelSports, []string{"bisiklet", "spor", "top", "fitness", "yoga", "koşu"}},
	{LabelDIY, []string{"vida", "matkap", "alet", "tamir", "hırdavat", "tornavida", "çekiç", "lehim"}},
	{LabelOther, nil}, // son çare
}
