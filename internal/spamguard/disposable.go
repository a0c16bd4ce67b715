package spamguard

import "strings"

// disposableDomains is a static denylist of throwaway email providers.
// Matching is exact on the lowercased domain; subdomains of a listed
// domain are not rejected unless listed themselves.
var disposableDomains = map[string]struct{}{
	"tempmail.com": {}, "temp-mail.org": {}, "tempmail.net": {},
	"temp-mail.io": {}, "guerrillamail.com": {}, "guerrillamail.org": {},
	"guerrillamailblock.com": {}, "mailinator.com": {}, "mailinator.net": {},
	"mailinator.org": {}, "mailinator2.com": {}, "10minutemail.com": {},
	"10minutemail.net": {}, "10minmail.com": {}, "throwaway.email": {},
	"throwawaymail.com": {}, "fakeinbox.com": {}, "fakemailgenerator.com": {},
	"yopmail.com": {}, "yopmail.fr": {}, "yopmail.net": {},
	"maildrop.cc": {}, "mailnesia.com": {}, "mailcatch.com": {},
	"dispostable.com": {}, "disposablemail.com": {}, "getairmail.com": {},
	"getnada.com": {}, "nada.email": {}, "mohmal.com": {},
	"emailondeck.com": {}, "trashmail.com": {}, "trashmail.net": {},
	"trashmail.org": {}, "trashemail.de": {}, "sharklasers.com": {},
	"grr.la": {}, "guerrillamail.info": {}, "spamgourmet.com": {},
	"mytrashmail.com": {}, "mailexpire.com": {}, "tempinbox.com": {},
	"discard.email": {}, "discardmail.com": {}, "spamfree24.org": {},
	"spamfree.eu": {}, "emailfake.com": {}, "emkei.cz": {},
	"anonymbox.com": {}, "anonymmail.net": {}, "binkmail.com": {},
	"bobmail.info": {}, "bofthew.com": {}, "brefmail.com": {},
	"bugmenot.com": {}, "bumpymail.com": {}, "chammy.info": {},
	"cheatmail.de": {}, "crazymailing.com": {}, "deadaddress.com": {},
	"despam.it": {}, "devnullmail.com": {}, "dfgh.net": {},
	"digitalsanctuary.com": {}, "discardmail.de": {}, "disposableaddress.com": {},
	"disposeamail.com": {}, "disposemail.com": {}, "dm.w3internet.co.uk": {},
	"dodgeit.com": {}, "dodgemail.de": {}, "dodgit.com": {},
	"dontreg.com": {}, "e4ward.com": {}, "emailias.com": {},
	"emailmiser.com": {}, "emailtemporario.com.br": {}, "emailthe.net": {},
	"emailto.de": {}, "etranquil.com": {}, "etranquil.net": {},
	"evopo.com": {}, "explodemail.com": {}, "filzmail.com": {},
	"fivemail.de": {}, "fleckens.hu": {}, "getonemail.com": {},
	"ghosttexter.de": {}, "girlsundertheinfluence.com": {}, "gishpuppy.com": {},
	"goemailgo.com": {}, "great-host.in": {}, "greensloth.com": {},
	"haltospam.com": {}, "hatespam.org": {}, "hidemail.de": {},
	"hidzz.com": {}, "hotpop.com": {}, "ieh-mail.de": {},
	"ihateyoualot.info": {}, "imails.info": {}, "inboxalias.com": {},
	"incognitomail.com": {}, "jetable.com": {}, "jetable.fr.nf": {},
	"jnxjn.com": {}, "kasmail.com": {}, "killmail.com": {},
	"killmail.net": {}, "kir.ch.tc": {}, "klassmaster.com": {},
	"klzlv.com": {}, "kulturbetrieb.info": {}, "kurzepost.de": {},
	"lawlita.com": {}, "letthemeatspam.com": {}, "lhsdv.com": {},
	"lifebyfood.com": {}, "link2mail.net": {}, "litedrop.com": {},
	"lol.ovpn.to": {}, "lookugly.com": {}, "lopl.co.cc": {},
	"lortemail.dk": {}, "lroid.com": {}, "maboard.com": {},
	"mail-hierarchie.net": {}, "mail2rss.org": {}, "mail333.com": {},
	"mail4trash.com": {}, "mailbidon.com": {}, "mailblocks.com": {},
	"mailde.de": {}, "mailde.info": {}, "maildu.de": {},
	"maileater.com": {}, "mailed.in": {}, "mailfa.tk": {},
	"mailfork.com": {}, "mailfreeonline.com": {}, "mailguard.me": {},
	"mailin8r.com": {}, "mailinater.com": {}, "mailinator.us": {},
	"mailismagic.com": {}, "mailmate.com": {}, "mailme.lv": {},
	"mailmetrash.com": {}, "mailmoat.com": {}, "mailnator.com": {},
	"mailnull.com": {}, "mailorg.org": {}, "mailseal.de": {},
	"mailshell.com": {}, "mailsiphon.com": {}, "mailslite.com": {},
	"mailzilla.com": {}, "mailzilla.org": {}, "mbx.cc": {},
	"mega.zik.dj": {}, "meinspamschutz.de": {}, "meltmail.com": {},
	"messagebeamer.de": {}, "mierdamail.com": {}, "mintemail.com": {},
	"mjukgansen.nu": {}, "moakt.com": {}, "mobi.web.id": {},
	"moburl.com": {}, "moncourrier.fr.nf": {}, "monemail.fr.nf": {},
	"monmail.fr.nf": {}, "monumentmail.com": {}, "mt2009.com": {},
	"mt2014.com": {}, "mypartyclip.de": {}, "myphantomemail.com": {},
	"myspaceinc.com": {}, "myspaceinc.net": {}, "myspacepimpedup.com": {},
	"neomailbox.com": {}, "nepwk.com": {}, "nervmich.net": {},
	"nervtmansen.de": {}, "netmails.com": {}, "netmails.net": {},
	"netzidiot.de": {}, "neverbox.com": {}, "no-spam.ws": {},
	"nobulk.com": {}, "noclickemail.com": {}, "nogmailspam.info": {},
	"nomail.xl.cx": {}, "nomail2me.com": {}, "nomorespamemails.com": {},
	"nospam.ze.tc": {}, "nospam4.us": {}, "nospamfor.us": {},
	"nospammail.net": {}, "nospamthanks.info": {}, "notmailinator.com": {},
	"nowmymail.com": {}, "nurfuerspam.de": {}, "nus.edu.sg": {},
	"nwldx.com": {}, "objectmail.com": {}, "obobbo.com": {},
	"odnorazovoe.ru": {}, "oneoffemail.com": {}, "onewaymail.com": {},
	"oopi.org": {}, "ordinaryamerican.net": {}, "otherinbox.com": {},
	"ourklips.com": {}, "outlawspam.com": {}, "ovpn.to": {},
	"owlpic.com": {}, "pancakemail.com": {}, "pjjkp.com": {},
	"plexolan.de": {}, "poczta.onet.pl": {}, "politikerclub.de": {},
	"poofy.org": {}, "pookmail.com": {}, "privacy.net": {},
	"privy-mail.com": {}, "privymail.de": {}, "proxymail.eu": {},
	"prtnx.com": {}, "punkass.com": {}, "putthisinyourspamdatabase.com": {},
	"qq.com": {}, "quickinbox.com": {}, "quickmail.nl": {},
	"rainmail.biz": {}, "rcpt.at": {}, "reallymymail.com": {},
	"realtyalerts.ca": {}, "recode.me": {}, "recursor.net": {},
	"recyclemail.dk": {}, "regbypass.com": {}, "regbypass.comsafe-mail.net": {},
	"rejectmail.com": {}, "reliable-mail.com": {}, "remail.cf": {},
	"rhyta.com": {}, "rklips.com": {}, "rmqkr.net": {},
	"royal.net": {}, "rppkn.com": {}, "rtrtr.com": {},
	"s0ny.net": {}, "safe-mail.net": {}, "safersignup.de": {},
	"safetymail.info": {}, "safetypost.de": {}, "sandelf.de": {},
	"saynotospams.com": {}, "schafmail.de": {}, "scatmail.com": {},
	"schemafarm.com": {}, "selfdestructingmail.com": {}, "sendspamhere.com": {},
	"sharedmailbox.org": {}, "shieldedmail.com": {}, "shiftmail.com": {},
	"shitmail.me": {}, "shortmail.net": {}, "shut.name": {},
	"shut.ws": {}, "sibmail.com": {}, "sinnlos-mail.de": {},
	"siteposter.net": {}, "skeefmail.com": {}, "slaskpost.se": {},
	"slopsbox.com": {}, "smashmail.de": {}, "smellfear.com": {},
	"snakemail.com": {}, "sneakemail.com": {}, "sneakmail.de": {},
	"snkmail.com": {}, "sofimail.com": {}, "sofort-mail.de": {},
	"sogetthis.com": {}, "soodonims.com": {}, "spam.la": {},
	"spam.su": {}, "spam4.me": {}, "spamail.de": {},
	"spamarrest.com": {}, "spamavert.com": {}, "spambob.com": {},
	"spambob.net": {}, "spambog.com": {}, "spambog.de": {},
	"spambog.ru": {}, "spambox.info": {}, "spambox.irishspringrealty.com": {},
	"spambox.us": {}, "spamcannon.com": {}, "spamcannon.net": {},
	"spamcero.com": {}, "spamcon.org": {}, "spamcorptastic.com": {},
	"spamcowboy.com": {}, "spamcowboy.net": {}, "spamcowboy.org": {},
	"spamday.com": {}, "spamex.com": {}, "spamfree24.com": {},
	"spamfree24.de": {}, "spamfree24.eu": {}, "spamfree24.info": {},
	"spamfree24.net": {}, "spamgoes.in": {}, "spamgourmet.net": {},
	"spamgourmet.org": {}, "spamherelots.com": {}, "spamhereplease.com": {},
	"spamhole.com": {}, "spamify.com": {}, "spaminator.de": {},
	"spamkill.info": {}, "spaml.com": {}, "spaml.de": {},
	"spammotel.com": {}, "spamobox.com": {}, "spamoff.de": {},
	"spamslicer.com": {}, "spamspot.com": {}, "spamstack.net": {},
	"spamthis.co.uk": {}, "spamthisplease.com": {}, "spamtrail.com": {},
	"spamtroll.net": {}, "speed.1s.fr": {}, "spoofmail.de": {},
	"squizzy.de": {}, "ssoia.com": {}, "startkeys.com": {},
	"stinkefinger.net": {}, "stop-my-spam.cf": {}, "stop-my-spam.com": {},
	"stop-my-spam.ga": {}, "stop-my-spam.ml": {}, "stop-my-spam.pp.ua": {},
	"stop-my-spam.tk": {}, "streetwisemail.com": {}, "stuffmail.de": {},
	"supergreatmail.com": {}, "supermailer.jp": {}, "superrito.com": {},
	"superstachel.de": {}, "suremail.info": {}, "svk.jp": {},
	"sweetxxx.de": {}, "tagyourself.com": {}, "teewars.org": {},
	"teleworm.com": {}, "teleworm.us": {}, "temp.emeraldwebmail.com": {},
	"temp.headstrong.de": {}, "tempalias.com": {}, "tempe-mail.com": {},
	"tempemail.biz": {}, "tempemail.com": {}, "tempemail.co.za": {},
	"tempemail.net": {}, "tempinbox.co.uk": {}, "tempmail.it": {},
	"tempmail2.com": {}, "tempmaildemo.com": {}, "tempmailer.com": {},
	"tempmailer.de": {}, "tempomail.fr": {}, "temporarily.de": {},
	"temporarioemail.com.br": {}, "temporaryemail.net": {}, "temporaryemail.us": {},
	"temporaryforwarding.com": {}, "temporaryinbox.com": {}, "tempthe.net": {},
	"thankyou2010.com": {}, "thc.st": {}, "thelimestones.com": {},
	"thisisnotmyrealemail.com": {}, "thismail.net": {}, "thismail.ru": {},
	"throam.com": {}, "throwam.com": {}, "throwawayemailaddress.com": {},
	"tilien.com": {}, "tmail.ws": {}, "tmailinator.com": {},
	"toiea.com": {}, "toomail.biz": {}, "topranklist.de": {},
	"tradermail.info": {}, "trash-amil.com": {}, "trash-mail.at": {},
	"trash-mail.com": {}, "trash-mail.de": {}, "trash2009.com": {},
	"trash2010.com": {}, "trash2011.com": {}, "trashdevil.com": {},
	"trashdevil.de": {}, "trashmail.at": {}, "trashmail.me": {},
	"trashmail.ws": {}, "trashmailer.com": {}, "trashymail.com": {},
	"trashymail.net": {}, "trbvm.com": {}, "trickmail.net": {},
	"trillianpro.com": {}, "tryalert.com": {}, "turual.com": {},
	"twinmail.de": {}, "twoweirdtricks.com": {}, "tyldd.com": {},
	"uggsrock.com": {}, "umail.net": {}, "upliftnow.com": {},
	"uplipht.com": {}, "uroid.com": {}, "us.af": {},
	"valemail.net": {}, "venompen.com": {}, "veryrealemail.com": {},
	"viditag.com": {}, "viewcastmedia.com": {}, "viewcastmedia.net": {},
	"viewcastmedia.org": {}, "viralplays.com": {}, "vkcode.ru": {},
	"voize.eu": {}, "w3internet.co.uk": {}, "walkmail.net": {},
	"webemail.me": {}, "webm4il.info": {}, "webuser.in": {},
	"wee.my": {}, "weg-werf-email.de": {}, "wegwerf-email.at": {},
	"wegwerf-email.de": {}, "wegwerf-email.net": {}, "wegwerf-emails.de": {},
	"wegwerfadresse.de": {}, "wegwerfemail.com": {}, "wegwerfemail.de": {},
	"wegwerfmail.de": {}, "wegwerfmail.info": {}, "wegwerfmail.net": {},
	"wegwerfmail.org": {}, "wetrainbayarea.com": {}, "wetrainbayarea.org": {},
	"wh4f.org": {}, "whatiaas.com": {}, "whatpaas.com": {},
	"whopy.com": {}, "whyspam.me": {}, "wilemail.com": {},
	"willhackforfood.biz": {}, "willselfdestruct.com": {}, "winemaven.info": {},
	"wolfsmail.tk": {}, "wollan.info": {}, "worldspace.link": {},
	"wronghead.com": {}, "wuzup.net": {}, "wuzupmail.net": {},
	"wwwnew.eu": {}, "xagloo.com": {}, "xemaps.com": {},
	"xents.com": {}, "xmaily.com": {}, "xoxy.net": {},
	"yapped.net": {}, "yep.it": {}, "yogamaven.com": {},
	"yuurok.com": {}, "zehnminuten.de": {}, "zehnminutenmail.de": {},
	"zippymail.info": {}, "zoaxe.com": {}, "zoemail.com": {},
	"zoemail.net": {}, "zoemail.org": {}, "zomg.info": {},
	"zxcv.com": {}, "zxcvbnm.com": {}, "zzz.com": {},
}

// isDisposableEmail reports whether the email's domain is on the denylist.
func isDisposableEmail(email string) bool {
	_, domain, ok := strings.Cut(strings.ToLower(email), "@")
	if !ok || domain == "" {
		return false
	}
	_, listed := disposableDomains[domain]
	return listed
}
